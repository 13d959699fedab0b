package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pastel/internal/api"
	"github.com/thenoetrevino/pastel/internal/models"
	"github.com/thenoetrevino/pastel/internal/validation"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", validation.ErrEmptyText, ExitValidation},
		{"wrapped validation", fmt.Errorf("add: %w", validation.ErrDuplicateName), ExitValidation},
		{"todo not found", fmt.Errorf("%w: t1", models.ErrTodoNotFound), ExitNotFound},
		{"category not found", models.ErrCategoryNotFound, ExitNotFound},
		{"backend 404", &api.HTTPError{Method: http.MethodPut, Path: "/todos/x", StatusCode: http.StatusNotFound}, ExitNotFound},
		{"backend 500", &api.HTTPError{Method: http.MethodGet, Path: "/todos", StatusCode: http.StatusInternalServerError}, ExitError},
		{"explicit code", WithExitCode(ExitUsage, errors.New("bad flag")), ExitUsage},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "VALIDATION_TooLong", ErrorCode(validation.ErrTodoTextTooLong))
	assert.Equal(t, "NOT_FOUND", ErrorCode(models.ErrTodoNotFound))
	assert.Equal(t, "NETWORK_ERROR", ErrorCode(&api.NetworkError{Method: http.MethodGet, Path: "/todos", Err: errors.New("refused")}))
	assert.Equal(t, "BACKEND_ERROR", ErrorCode(&api.HTTPError{StatusCode: http.StatusBadGateway}))
	assert.Equal(t, "ERROR", ErrorCode(errors.New("boom")))
}

func TestWithExitCode(t *testing.T) {
	assert.NoError(t, WithExitCode(ExitError, nil))

	inner := errors.New("inner")
	err := WithExitCode(ExitDataErr, inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "inner", err.Error())

	var coded *CodedError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &coded)
	assert.Equal(t, ExitDataErr, coded.Code)
	assert.Equal(t, ExitDataErr, ExitCode(err))
}
