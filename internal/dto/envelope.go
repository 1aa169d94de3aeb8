package dto

// Failure kinds carried in the error field of the envelope. Failures still
// answer HTTP 200 with success=false for compatibility with existing
// clients; the kind field is additive so tests and newer clients can branch
// without matching message text.
const (
	ErrKindValidation = "validation_error"
	ErrKindConflict   = "conflict"
	ErrKindNotFound   = "not_found"
	ErrKindAuth       = "auth_error"
	ErrKindStorage    = "storage_error"
)

// MessageResponse is the success envelope for operations that only report a
// human-readable message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
