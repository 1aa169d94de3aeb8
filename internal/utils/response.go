package utils

import (
	"encoding/json"
	"net/http"

	"CARRENTAL_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteSuccessMessage writes the success envelope with a message only
func WriteSuccessMessage(w http.ResponseWriter, message string) {
	WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

// WriteFailure writes the failure envelope. The existing clients read
// success/message from a 200 response rather than the HTTP status, so
// failures answer 200; kind is the machine-readable error field.
func WriteFailure(w http.ResponseWriter, kind, message string) {
	WriteJSONResponse(w, http.StatusOK, dto.ErrorResponse{Success: false, Error: kind, Message: message})
}
