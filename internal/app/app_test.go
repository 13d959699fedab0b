package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pastel/internal/config"
	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/logging"
	"github.com/thenoetrevino/pastel/internal/mockapi"
	"github.com/thenoetrevino/pastel/internal/models"
	"github.com/thenoetrevino/pastel/internal/pastel"
	"github.com/thenoetrevino/pastel/internal/validation"
)

func setupTestApp(t *testing.T, opts ...Option) (*App, *mockapi.Server) {
	t.Helper()
	backend, err := mockapi.NewServer()
	require.NoError(t, err)

	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)

	cfg := config.Default()
	cfg.API.BaseURL = ts.URL

	opts = append([]Option{WithHTTPClient(ts.Client()), WithLogger(logging.Discard())}, opts...)
	a, err := New(cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, backend
}

func TestNew(t *testing.T) {
	a, _ := setupTestApp(t)

	assert.NotNil(t, a.Todos)
	assert.NotNil(t, a.Categories)
	assert.NotNil(t, a.Bus())
	assert.NotNil(t, a.Client())
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	cfg := config.Default()
	cfg.API.BaseURL = "localhost:3001"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewWithNilConfigUsesDefaults(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.Equal(t, config.DefaultBaseURL, a.Client().BaseURL())
}

func TestLoad(t *testing.T) {
	a, backend := setupTestApp(t)
	backend.Seed(
		[]models.Todo{{ID: "t1", Text: "Buy milk", CategoryID: "c1"}},
		[]models.Category{{ID: "c1", Name: "Errands", Color: "#ffd1dc"}},
	)

	require.NoError(t, a.Load(context.Background()))

	assert.Len(t, a.Todos.Todos(), 1)
	assert.Equal(t, []string{"Errands"}, a.Categories.Names())
	assert.False(t, a.Todos.IsLoading())
	assert.False(t, a.Categories.IsLoading())
}

func TestLoadReportsFailures(t *testing.T) {
	a, backend := setupTestApp(t)
	backend.FailNext(http.MethodGet, "/todos", http.StatusInternalServerError)

	err := a.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFailed))
	assert.Contains(t, err.Error(), "failed to fetch todos")
	assert.Empty(t, a.Categories.LastError(), "categories loaded fine")
}

func TestLoadCancelled(t *testing.T) {
	a, backend := setupTestApp(t)
	backend.Seed([]models.Todo{{ID: "t1", Text: "Buy milk"}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, a.Todos.Todos(), "cache untouched")
	assert.False(t, a.Todos.IsLoading())
}

func TestCreateTodoValidation(t *testing.T) {
	a, backend := setupTestApp(t)

	tests := []struct {
		name string
		text string
		code validation.Code
	}{
		{"empty", "", validation.CodeEmptyText},
		{"whitespace only", "   \t", validation.CodeEmptyText},
		{"too long", strings.Repeat("x", validation.MaxTodoLength+1), validation.CodeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo, err := a.CreateTodo(context.Background(), tt.text, "")
			require.Error(t, err)
			assert.Nil(t, todo)
			assert.Equal(t, tt.code, validation.CodeOf(err))
		})
	}

	assert.Empty(t, backend.Todos(), "invalid input never reaches the backend")
	assert.Zero(t, a.Client().Metrics().GetSnapshot().RequestsSent)
}

func TestCreateTodoTrimsText(t *testing.T) {
	a, backend := setupTestApp(t)

	todo, err := a.CreateTodo(context.Background(), "  Buy milk  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", todo.Text)
	assert.False(t, todo.Done)

	require.Len(t, backend.Todos(), 1)
	assert.Equal(t, "Buy milk", backend.Todos()[0].Text)
}

func TestCreateCategory(t *testing.T) {
	a, _ := setupTestApp(t)
	ctx := context.Background()

	category, err := a.CreateCategory(ctx, " Work ")
	require.NoError(t, err)
	assert.Equal(t, "Work", category.Name)
	assert.True(t, pastel.IsPastel(category.Color), "color %s", category.Color)

	_, err = a.CreateCategory(ctx, "work")
	require.Error(t, err)
	assert.Equal(t, validation.CodeDuplicateName, validation.CodeOf(err))

	_, err = a.CreateCategory(ctx, strings.Repeat("n", validation.MaxCategoryLength+1))
	assert.Equal(t, validation.CodeTooLong, validation.CodeOf(err))

	assert.Len(t, a.Categories.Categories(), 1)
}

func TestToggleAssignDelete(t *testing.T) {
	a, backend := setupTestApp(t)
	backend.Seed(
		[]models.Todo{{ID: "t1", Text: "Buy milk"}},
		[]models.Category{{ID: "c1", Name: "Errands", Color: "#ffd1dc"}},
	)
	ctx := context.Background()
	require.NoError(t, a.Load(ctx))

	toggled, err := a.ToggleTodo(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	moved, err := a.AssignCategory(ctx, "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", moved.CategoryID)

	cleared, err := a.AssignCategory(ctx, "t1", "")
	require.NoError(t, err)
	assert.False(t, cleared.HasCategory())

	require.NoError(t, a.DeleteTodo(ctx, "t1"))
	assert.Empty(t, a.Todos.Todos())
	assert.Empty(t, backend.Todos())
}

func TestNotFound(t *testing.T) {
	a, backend := setupTestApp(t)
	backend.Seed([]models.Todo{{ID: "t1", Text: "Buy milk"}}, nil)
	ctx := context.Background()
	require.NoError(t, a.Load(ctx))

	_, err := a.ToggleTodo(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrTodoNotFound))
	assert.True(t, IsNotFound(err))

	_, err = a.AssignCategory(ctx, "t1", "no-such-category")
	assert.True(t, errors.Is(err, models.ErrCategoryNotFound))

	err = a.DeleteTodo(ctx, "missing")
	assert.True(t, IsNotFound(err))

	assert.Empty(t, a.Todos.LastError(), "lookups failing locally do not set store errors")
}

func TestStoresPublishToBus(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()
	feed, cancel := bus.Subscribe(8)
	defer cancel()

	a, _ := setupTestApp(t, WithBus(bus))
	_, err := a.CreateTodo(context.Background(), "Walk dog", "")
	require.NoError(t, err)

	event := <-feed
	assert.Equal(t, events.EventTodosChanged, event.Type)

	// A supplied bus outlives the app
	require.NoError(t, a.Close())
	_, err = a.CreateTodo(context.Background(), "Feed cat", "")
	require.NoError(t, err)
	event = <-feed
	assert.Equal(t, events.EventTodosChanged, event.Type)
}

func TestStatus(t *testing.T) {
	a, backend := setupTestApp(t)
	backend.Seed([]models.Todo{
		{ID: "t1", Text: "a", Done: true},
		{ID: "t2", Text: "b"},
	}, nil)
	require.NoError(t, a.Load(context.Background()))

	status := a.Status()
	assert.Equal(t, 2, status.Todos)
	assert.Equal(t, 1, status.Completed)
	assert.Equal(t, 0, status.Categories)
	assert.Equal(t, int64(2), status.Requests.RequestsSent)
	assert.Empty(t, status.TodoError)
}
