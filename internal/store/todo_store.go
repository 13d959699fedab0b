// Package store mirrors the backend's todos and categories collections in
// memory. Cache changes are applied only after the backend confirms them.
package store

import (
	"context"
	"slices"

	"github.com/thenoetrevino/pastel/internal/api"
	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/models"
)

// TodoStore owns the local copy of the todos collection.
// It is safe for concurrent use.
type TodoStore struct {
	loadingState
	client api.TodoClient
	todos  []models.Todo
}

// NewTodoStore creates an empty store backed by client
func NewTodoStore(client api.TodoClient, opts ...Option) *TodoStore {
	return &TodoStore{
		loadingState: newLoadingState(newStoreConfig(opts)),
		client:       client,
		todos:        []models.Todo{},
	}
}

// FetchAll replaces the cache with the backend's collection. Failures are
// recorded in LastError and logged, never returned; the cache is left as is.
func (s *TodoStore) FetchAll(ctx context.Context) {
	reqID := s.beginLoading("fetch todos")

	todos, err := s.client.ListTodos(ctx)
	if err != nil {
		_ = s.failRequest(reqID, "failed to fetch todos", err)
		return
	}

	s.mu.Lock()
	s.todos = slices.Clone(todos)
	s.endLoading(reqID)
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventTodosChanged})
}

// AddTodo creates a todo that is not done. An empty categoryID leaves it
// uncategorized. The record the backend returns is appended to the cache.
func (s *TodoStore) AddTodo(ctx context.Context, text, categoryID string) (*models.Todo, error) {
	reqID := s.beginLoading("add todo")

	created, err := s.client.CreateTodo(ctx, models.NewTodo{
		Text:       text,
		Done:       false,
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, s.failRequest(reqID, "failed to add todo", err)
	}

	todo := *created
	if todo.ID == "" {
		todo.ID = s.fallbackID()
	}

	s.mu.Lock()
	s.todos = append(s.todos, todo)
	s.endLoading(reqID)
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventTodosChanged, ID: todo.ID})
	return &todo, nil
}

// ToggleTodo flips the done flag of a cached todo. An id that is not cached
// is a silent no-op returning nil, nil.
func (s *TodoStore) ToggleTodo(ctx context.Context, id string) (*models.Todo, error) {
	todo, ok := s.Get(id)
	if !ok {
		return nil, nil
	}
	todo.Done = !todo.Done
	return s.replace(ctx, id, todo, "failed to update todo")
}

// UpdateTodoCategory moves a cached todo to another category. An id that is
// not cached is a silent no-op returning nil, nil.
func (s *TodoStore) UpdateTodoCategory(ctx context.Context, id, categoryID string) (*models.Todo, error) {
	todo, ok := s.Get(id)
	if !ok {
		return nil, nil
	}
	todo.CategoryID = categoryID
	return s.replace(ctx, id, todo, "failed to update todo category")
}

// replace PUTs the full record and swaps the cached copy for the backend's.
// If the todo was removed from the cache while the request was in flight,
// the response is dropped.
func (s *TodoStore) replace(ctx context.Context, id string, todo models.Todo, failMessage string) (*models.Todo, error) {
	updated, err := s.client.UpdateTodo(ctx, todo)
	if err != nil {
		return nil, s.fail(failMessage, err)
	}

	result := *updated
	if result.ID == "" {
		result.ID = id
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx >= 0 {
		s.todos[idx] = result
	}
	s.mu.Unlock()

	if idx < 0 {
		s.cfg.logger.Debug("todo removed while update was in flight", "id", id)
		return &result, nil
	}

	s.publish(events.Event{Type: events.EventTodosChanged, ID: id})
	return &result, nil
}

// DeleteTodo removes a todo on the backend, then from the cache
func (s *TodoStore) DeleteTodo(ctx context.Context, id string) error {
	if err := s.client.DeleteTodo(ctx, id); err != nil {
		return s.fail("failed to delete todo", err)
	}

	s.mu.Lock()
	s.todos = slices.DeleteFunc(s.todos, func(t models.Todo) bool { return t.ID == id })
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventTodosChanged, ID: id})
	return nil
}

// Todos returns a copy of the cached todos in order
func (s *TodoStore) Todos() []models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.todos)
}

// Get returns the cached todo with the given id
func (s *TodoStore) Get(id string) (models.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Todo{}, false
	}
	return s.todos[idx], true
}

// State returns a consistent snapshot of todos, loading flag and error
func (s *TodoStore) State() models.TodoState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.TodoState{
		LoadingState: s.loadingSnapshot(),
		Todos:        slices.Clone(s.todos),
	}
}

// indexOf must be called with s.mu held
func (s *TodoStore) indexOf(id string) int {
	return slices.IndexFunc(s.todos, func(t models.Todo) bool { return t.ID == id })
}
