package thread

import (
	"errors"
	"fmt"
)

var (
	ErrThreadNotFound    = errors.New("thread not found")
	ErrReplyNotFound     = errors.New("reply not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// ValidationError is returned when a request is missing required input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationMessage returns the client facing message of a ValidationError
// in err's chain.
func ValidationMessage(err error) (string, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Message, true
	}
	return "", false
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
