package apperrors

import "net/http"

// Error is the failure shape every handler reports through the Gin error
// chain. The error-handling middleware translates it into the response
// envelope; anything that is not an *Error becomes a 500.
type Error struct {
	Status  int
	Message string
	Details interface{}
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validation reports user input violating declared rules. Details carries
// one single-entry field->message map per violated field.
func Validation(details interface{}) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: "Validation failed", Details: details}
}

// Conflict reports an application-level uniqueness violation.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for logging but
// never serialized to the client.
func Internal(message string, cause error) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return &Error{Status: http.StatusInternalServerError, Message: message, cause: cause}
}
