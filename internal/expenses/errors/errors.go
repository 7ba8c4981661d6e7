package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrCategoryRequired = NewValidationError("Category must be provided")
	ErrTitleRequired    = NewValidationError("Title must be provided")
	ErrDateRequired     = NewValidationError("Date must be provided")
	ErrPayByRequired    = NewValidationError("Payment method must be provided")
	ErrInvalidAmount    = NewValidationError("Amount must be greater than zero")
)
