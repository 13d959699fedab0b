package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/pastel/internal/api"
	"github.com/thenoetrevino/pastel/internal/config"
	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/models"
	"github.com/thenoetrevino/pastel/internal/store"
	"github.com/thenoetrevino/pastel/internal/validation"
)

// App holds the stores and the change feed and provides dependency injection.
// This is the main application container shared by the CLI and the TUI.
type App struct {
	client *api.Client
	bus    *events.Bus
	logger *slog.Logger

	// ownsBus is false when the bus came from WithBus
	ownsBus bool

	Todos      *store.TodoStore
	Categories *store.CategoryStore
}

// New creates a new App with both stores pointed at cfg.API.BaseURL.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := appConfig{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Duration(cfg.API.TimeoutMS) * time.Millisecond}
	}

	client, err := api.NewClient(cfg.API.BaseURL, httpClient)
	if err != nil {
		return nil, err
	}

	bus := options.bus
	ownsBus := false
	if bus == nil {
		bus = events.NewBus()
		ownsBus = true
	}

	storeOpts := []store.Option{
		store.WithPublisher(bus),
		store.WithLogger(options.logger),
	}

	return &App{
		client:     client,
		bus:        bus,
		logger:     options.logger,
		ownsBus:    ownsBus,
		Todos:      store.NewTodoStore(client, storeOpts...),
		Categories: store.NewCategoryStore(client, storeOpts...),
	}, nil
}

// Bus returns the change feed the stores publish to
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Client returns the underlying API client
func (a *App) Client() *api.Client {
	return a.client
}

// Load fetches categories and todos concurrently. Failures are recorded in
// the stores as usual; Load additionally reports them as ErrLoadFailed.
// One failed fetch does not cancel the other; only ctx does.
func (a *App) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		a.Categories.FetchAll(ctx)
		return ctx.Err()
	})
	g.Go(func() error {
		a.Todos.FetchAll(ctx)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	var msgs []string
	if msg := a.Categories.LastError(); msg != "" {
		msgs = append(msgs, msg)
	}
	if msg := a.Todos.LastError(); msg != "" {
		msgs = append(msgs, msg)
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrLoadFailed, strings.Join(msgs, "; "))
	}
	return nil
}

// CreateTodo validates text and adds a todo with the trimmed text.
// Invalid text returns a *validation.Error without touching the network.
func (a *App) CreateTodo(ctx context.Context, text, categoryID string) (*models.Todo, error) {
	if res := validation.ValidateTodoText(text); !res.IsValid {
		return nil, res.Err
	}
	return a.Todos.AddTodo(ctx, strings.TrimSpace(text), categoryID)
}

// CreateCategory validates name against the cached category names and adds
// a category with the trimmed name and a fresh pastel color.
func (a *App) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if res := validation.ValidateCategoryName(name, a.Categories.Names()); !res.IsValid {
		return nil, res.Err
	}
	return a.Categories.AddCategory(ctx, strings.TrimSpace(name))
}

// ToggleTodo flips a cached todo's done flag
func (a *App) ToggleTodo(ctx context.Context, id string) (*models.Todo, error) {
	if _, ok := a.Todos.Get(id); !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrTodoNotFound, id)
	}
	return notFoundIfNil(a.Todos.ToggleTodo(ctx, id))
}

// AssignCategory moves a cached todo to categoryID. An empty categoryID
// removes the todo from its category.
func (a *App) AssignCategory(ctx context.Context, id, categoryID string) (*models.Todo, error) {
	if _, ok := a.Todos.Get(id); !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrTodoNotFound, id)
	}
	if categoryID != "" {
		if _, ok := models.FindCategory(a.Categories.Categories(), categoryID); !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrCategoryNotFound, categoryID)
		}
	}
	return notFoundIfNil(a.Todos.UpdateTodoCategory(ctx, id, categoryID))
}

// notFoundIfNil covers a todo deleted between the lookup and the store call
func notFoundIfNil(todo *models.Todo, err error) (*models.Todo, error) {
	if err == nil && todo == nil {
		return nil, models.ErrTodoNotFound
	}
	return todo, err
}

// DeleteTodo removes a cached todo
func (a *App) DeleteTodo(ctx context.Context, id string) error {
	if _, ok := a.Todos.Get(id); !ok {
		return fmt.Errorf("%w: %s", models.ErrTodoNotFound, id)
	}
	return a.Todos.DeleteTodo(ctx, id)
}

// Status is a point-in-time view of the client and both stores
type Status struct {
	BaseURL           string              `json:"base_url"`
	Requests          api.MetricsSnapshot `json:"requests"`
	Todos             int                 `json:"todos"`
	Completed         int                 `json:"completed"`
	Categories        int                 `json:"categories"`
	TodoError         string              `json:"todo_error,omitempty"`
	CategoryError     string              `json:"category_error,omitempty"`
	PendingTodos      []string            `json:"pending_todos,omitempty"`
	PendingCategories []string            `json:"pending_categories,omitempty"`
	DroppedEvents     int64               `json:"dropped_events"`
}

// Status collects request metrics and store state
func (a *App) Status() Status {
	todos := a.Todos.State()
	categories := a.Categories.State()
	done, _ := todos.Stats()

	return Status{
		BaseURL:           a.client.BaseURL(),
		Requests:          a.client.Metrics().GetSnapshot(),
		Todos:             len(todos.Todos),
		Completed:         done,
		Categories:        len(categories.Categories),
		TodoError:         todos.Error,
		CategoryError:     categories.Error,
		PendingTodos:      a.Todos.Pending(),
		PendingCategories: a.Categories.Pending(),
		DroppedEvents:     a.bus.Dropped(),
	}
}

// Close releases the bus if App created it
func (a *App) Close() error {
	if a.ownsBus {
		a.bus.Close()
	}
	return nil
}

// IsNotFound reports whether err means a todo or category is not cached
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrTodoNotFound) || errors.Is(err, models.ErrCategoryNotFound)
}
