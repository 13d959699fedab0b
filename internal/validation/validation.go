// Package validation holds the pure input checks applied to todo text and
// category names before anything is sent to the backend.
package validation

import (
	"strings"
	"unicode/utf8"
)

// Length limits, measured in runes after trimming surrounding whitespace
const (
	MaxTodoLength     = 200
	MaxCategoryLength = 50
	MinTodoLength     = 1
	MinCategoryLength = 1
)

// Result is the outcome of a validation check.
// Err is nil exactly when IsValid is true.
type Result struct {
	IsValid bool
	Err     error
}

func valid() Result {
	return Result{IsValid: true}
}

func invalid(err *Error) Result {
	return Result{IsValid: false, Err: err}
}

// ValidateTodoText checks that text is non-empty and at most MaxTodoLength
// characters once trimmed.
func ValidateTodoText(text string) Result {
	trimmed := strings.TrimSpace(text)

	// MinTodoLength is 1, so the empty check covers it
	if utf8.RuneCountInString(trimmed) < MinTodoLength {
		return invalid(ErrEmptyText)
	}
	if utf8.RuneCountInString(trimmed) > MaxTodoLength {
		return invalid(ErrTodoTextTooLong)
	}
	return valid()
}

// ValidateCategoryName checks that name is non-empty, at most
// MaxCategoryLength characters once trimmed, and does not match any of
// existingNames ignoring case.
func ValidateCategoryName(name string, existingNames []string) Result {
	trimmed := strings.TrimSpace(name)

	if utf8.RuneCountInString(trimmed) < MinCategoryLength {
		return invalid(ErrEmptyName)
	}
	if utf8.RuneCountInString(trimmed) > MaxCategoryLength {
		return invalid(ErrCategoryNameTooLong)
	}
	for _, existing := range existingNames {
		if strings.EqualFold(existing, trimmed) {
			return invalid(ErrDuplicateName)
		}
	}
	return valid()
}
