package bot

import (
	"errors"
	"fmt"
)

// UserError is an error whose Message is safe to post to the chat.
// Cause, when set, is the internal error kept for logging.
type UserError struct {
	Message string
	Cause   error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// UserErrorf creates a user-facing error with a formatted message.
func UserErrorf(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// WrapUserError wraps an internal error with a message safe for the chat.
func WrapUserError(message string, cause error) *UserError {
	return &UserError{Message: message, Cause: cause}
}

// IsUserError reports whether err is (or wraps) a UserError.
func IsUserError(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr)
}

// GetUserMessage returns the text to post to the chat for the error:
// the UserError message, or a generic one for internal errors.
func GetUserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	return MsgInternalError
}

// ShouldLog reports whether the error is worth logging. UserErrors without
// a cause are plain user mistakes and are not.
func ShouldLog(err error) bool {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Cause != nil
	}
	return true
}
