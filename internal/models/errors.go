package models

import "errors"

// Domain-specific errors
var (
	// ErrTodoNotFound indicates the todo is not in the local cache
	ErrTodoNotFound = errors.New("todo not found")

	// ErrCategoryNotFound indicates the category is not in the local cache
	ErrCategoryNotFound = errors.New("category not found")
)
