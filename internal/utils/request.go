package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"CARRENTAL_BACK-END/internal/dto"
)

// DecodeJSONRequest decodes the request body into v. On failure it writes
// the validation failure envelope and returns the error, so callers can
// simply return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteFailure(w, dto.ErrKindValidation, "Invalid request body")
		return err
	}
	return nil
}

// ParseDate parses a date in YYYY-MM-DD or RFC3339 format
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
