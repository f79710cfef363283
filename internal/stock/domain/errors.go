package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by every stock operation. Callers match them with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error carries a caller-facing message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds an Error of the given kind with a formatted message.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidYearMonth    = NewError(ErrValidation, "Invalid format. Use YYYY-MM")
	ErrColorExists         = NewError(ErrConflict, "Color already exists")
	ErrDescriptionExists   = NewError(ErrConflict, "Description already exists")
	ErrColorNotFound       = NewError(ErrNotFound, "Color not found")
	ErrDescriptionNotFound = NewError(ErrNotFound, "Description not found")
)
