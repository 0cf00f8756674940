package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken             = errors.New("a user with this email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountDeactivated     = errors.New("your account has been deactivated. Please contact support")
	ErrUserNotFound           = errors.New("user account not found")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrNoFileProvided         = errors.New("no file uploaded")
)

// ValidationError marks a request that fails field validation. Handlers map
// it to a 400 with the message as the error detail.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// QuotaExceededError rejects an upload once the monthly ceiling is reached.
// It carries the limit so callers can message it.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("you have reached your monthly upload limit of %d files. Please upgrade your plan or wait until next month", e.Limit)
}
