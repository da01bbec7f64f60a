package dto

// ErrorResponse is the standard error envelope for all endpoints. The
// message is client-safe; persistence failures are reported generically
// and the underlying error stays in the server logs.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid email address"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
