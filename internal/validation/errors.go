package validation

import (
	"errors"
	"fmt"
)

// Code classifies a validation failure
type Code string

const (
	CodeEmptyText     Code = "EmptyText"
	CodeEmptyName     Code = "EmptyName"
	CodeTooLong       Code = "TooLong"
	CodeDuplicateName Code = "DuplicateName"
)

// Error is a client-side validation failure. It never reaches the network.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Validation errors
var (
	ErrEmptyText           = &Error{Code: CodeEmptyText, Message: "Todo text cannot be empty"}
	ErrTodoTextTooLong     = &Error{Code: CodeTooLong, Message: fmt.Sprintf("Todo text must be less than %d characters", MaxTodoLength)}
	ErrEmptyName           = &Error{Code: CodeEmptyName, Message: "Category name cannot be empty"}
	ErrCategoryNameTooLong = &Error{Code: CodeTooLong, Message: fmt.Sprintf("Category name must be less than %d characters", MaxCategoryLength)}
	ErrDuplicateName       = &Error{Code: CodeDuplicateName, Message: "Category name already exists"}
)

// CodeOf returns the validation code carried by err, or "" if err is not a
// validation error.
func CodeOf(err error) Code {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Code
	}
	return ""
}

// IsValidationError reports whether err wraps a validation error
func IsValidationError(err error) bool {
	return CodeOf(err) != ""
}
