package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the standard error response structure. Error carries
// the underlying error text and is only populated in development mode.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// WithError attaches the underlying error text to the response
func (e *ErrorResponse) WithError(err error) *ErrorResponse {
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
