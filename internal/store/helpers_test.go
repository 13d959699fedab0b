package store

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pastel/internal/api"
	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/mockapi"
	"github.com/thenoetrevino/pastel/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestBackend starts an in-memory backend and a client pointed at it
func setupTestBackend(t *testing.T) (*mockapi.Server, *api.Client) {
	t.Helper()
	backend, err := mockapi.NewServer()
	require.NoError(t, err)

	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return backend, client
}

// recordingPublisher records every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []events.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]events.EventType, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

// gatedTodoClient blocks each call until the test releases it, so tests can
// interleave requests deterministically.
type gatedTodoClient struct {
	mu      sync.Mutex
	todos   []models.Todo
	nextID  int
	started chan string
	release map[string]chan struct{}
	errs    map[string]error
	omitID  bool
}

func newGatedTodoClient(todos ...models.Todo) *gatedTodoClient {
	return &gatedTodoClient{
		todos:   todos,
		started: make(chan string, 16),
		release: make(map[string]chan struct{}),
		errs:    make(map[string]error),
	}
}

// failOn makes every call of op return err once released
func (c *gatedTodoClient) failOn(op string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[op] = err
}

// gate makes calls of op block until the returned func is called
func (c *gatedTodoClient) gate(op string) func() {
	ch := make(chan struct{})
	c.mu.Lock()
	c.release[op] = ch
	c.mu.Unlock()
	return func() { close(ch) }
}

func (c *gatedTodoClient) wait(op string) error {
	c.mu.Lock()
	ch := c.release[op]
	c.mu.Unlock()
	c.started <- op
	if ch != nil {
		<-ch
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs[op]
}

func (c *gatedTodoClient) ListTodos(ctx context.Context) ([]models.Todo, error) {
	if err := c.wait("list"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Todo(nil), c.todos...), nil
}

func (c *gatedTodoClient) CreateTodo(ctx context.Context, todo models.NewTodo) (*models.Todo, error) {
	if err := c.wait("create"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	created := models.Todo{Text: todo.Text, Done: todo.Done, CategoryID: todo.CategoryID}
	if !c.omitID {
		created.ID = string(rune('a' + c.nextID - 1))
	}
	c.todos = append(c.todos, created)
	return &created, nil
}

func (c *gatedTodoClient) UpdateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	if err := c.wait("update"); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *gatedTodoClient) DeleteTodo(ctx context.Context, id string) error {
	return c.wait("delete")
}

// waitStarted blocks until op has reached the client
func waitStarted(t *testing.T, c *gatedTodoClient, op string) {
	t.Helper()
	for {
		select {
		case got := <-c.started:
			if got == op {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Timeout waiting for %s to start", op)
		}
	}
}
