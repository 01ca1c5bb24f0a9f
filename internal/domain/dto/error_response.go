package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint on failure.
//
// Fields:
//   - Message: Human-readable description of what went wrong.
//   - ErrorDetails: Optional underlying error text (omitted when empty).
//   - Timestamp: Moment the error response was built (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date format, expected YYYY-MM-DD"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time \"22-01-5\""`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
//
// Parameters:
//   - message (string): High-level error description.
//   - err (error): Underlying cause; may be nil.
//
// Returns:
//   - ErrorResponse: Response with Timestamp set to time.Now().UTC().
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now().UTC(),
	}
}

// Error implements the error interface so an ErrorResponse can flow through
// error-typed plumbing (e.g., gin's c.Error).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
