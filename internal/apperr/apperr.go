// Package apperr defines the operational error type shared by handlers and
// middleware. An operational error is an anticipated failure with a defined
// HTTP status and a message safe to show callers (validation failures, auth
// failures, missing resources). Anything else reaching the error pipeline is
// treated as a programmer error and answered with a generic 500.
package apperr

// Error carries an HTTP status code and a user-facing message through the
// request pipeline to the centralized error handler.
type Error struct {
	Message     string
	Status      int
	Operational bool
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// New returns an operational error with the given message and status.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status, Operational: true}
}

// Internal returns a non-operational error. The message is logged server
// side; callers only ever see a generic 500 response.
func Internal(message string) *Error {
	return &Error{Message: message, Status: 500, Operational: false}
}
