// Package api is the HTTP+JSON client for the todos and categories
// collections of the backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thenoetrevino/pastel/internal/models"
)

// DefaultBaseURL is where the development backend listens
const DefaultBaseURL = "http://localhost:3001"

// DefaultTimeout bounds a single request when no http.Client is supplied
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response body ends up in an HTTPError
const maxErrorBody = 512

// TodoClient defines the todo collection operations
type TodoClient interface {
	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, todo models.NewTodo) (*models.Todo, error)
	UpdateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

// CategoryClient defines the category collection operations
type CategoryClient interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.NewCategory) (*models.Category, error)
}

// Client talks to the backend REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

// Compile-time verification that *Client implements both collections
var (
	_ TodoClient     = (*Client)(nil)
	_ CategoryClient = (*Client)(nil)
)

// NewClient creates a client for the API rooted at baseURL.
// A nil httpClient gets one with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http(s) URL", baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		metrics:    NewMetrics(),
	}, nil
}

// BaseURL returns the API root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Metrics returns the client's request counters
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// ListTodos fetches the whole todos collection
func (c *Client) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/"+models.TodosCollection, nil, &todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, nil
}

// CreateTodo posts a new todo and returns the record the backend stored
func (c *Client) CreateTodo(ctx context.Context, todo models.NewTodo) (*models.Todo, error) {
	var created models.Todo
	if err := c.do(ctx, http.MethodPost, "/"+models.TodosCollection, todo, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTodo replaces the full todo record identified by todo.ID
func (c *Client) UpdateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	var updated models.Todo
	if err := c.do(ctx, http.MethodPut, itemPath(models.TodosCollection, todo.ID), todo, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTodo removes the todo identified by id
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath(models.TodosCollection, id), nil, nil)
}

// ListCategories fetches the whole categories collection
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/"+models.CategoriesCollection, nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// CreateCategory posts a new category and returns the stored record
func (c *Client) CreateCategory(ctx context.Context, category models.NewCategory) (*models.Category, error) {
	var created models.Category
	if err := c.do(ctx, http.MethodPost, "/"+models.CategoriesCollection, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func itemPath(collection, id string) string {
	return "/" + collection + "/" + url.PathEscape(id)
}

// do performs one JSON request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Method: method, Path: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.metrics.IncRequestsSent()
	c.metrics.InFlight.Add(1)
	defer c.metrics.InFlight.Add(-1)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncNetworkErrors()
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Debug("failed to close response body", "error", closeErr)
		}
	}()

	slog.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.IncHTTPErrors()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.IncNetworkErrors()
		return &NetworkError{Method: method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
