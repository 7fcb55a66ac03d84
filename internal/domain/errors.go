package domain

import "errors"

// Domain errors are reported to clients as 200 responses with an error body;
// their messages are the wire format and must not change.
var (
	ErrDuplicateUser = errors.New("Name already exists.")
	ErrUserNotFound  = errors.New("ID not found")
)

// ValidationError marks malformed input (bad identifier format, unparsable
// dates or limits). The HTTP boundary maps it to a 400 with the message as
// plain text.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
