// Package mockapi is an in-memory backend that speaks the todos and
// categories REST contract. It backs the tests and the mock-api command.
package mockapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thenoetrevino/pastel/internal/models"
)

// maxBodySize caps request bodies
const maxBodySize = 1 << 20

// Server holds the collections and serves them over HTTP
type Server struct {
	mu         sync.RWMutex
	todos      []models.Todo
	categories []models.Category
	faults     map[string][]int

	router   *mux.Router
	schemas  *schemas
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// NewServer creates an empty backend
func NewServer() (*Server, error) {
	compiled, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	s := &Server{
		todos:      []models.Todo{},
		categories: []models.Category{},
		faults:     make(map[string][]int),
		schemas:    compiled,
		registry:   prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pastel_mock",
			Name:      "requests_total",
			Help:      "Requests handled by the mock backend, by method, route and status.",
		}, []string{"method", "route", "status"}),
	}
	s.registry.MustRegister(s.requests)
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(s.instrument)
	api.HandleFunc("/todos", s.listTodos).Methods(http.MethodGet)
	api.HandleFunc("/todos", s.createTodo).Methods(http.MethodPost)
	api.HandleFunc("/todos/{id}", s.getTodo).Methods(http.MethodGet)
	api.HandleFunc("/todos/{id}", s.updateTodo).Methods(http.MethodPut)
	api.HandleFunc("/todos/{id}", s.deleteTodo).Methods(http.MethodDelete)
	api.HandleFunc("/categories", s.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.createCategory).Methods(http.MethodPost)

	s.router = r
}

// Handler returns the HTTP handler serving the API and /metrics
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry exposes the Prometheus registry backing /metrics
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// FailNext makes the next request matching method and route template
// (e.g. "POST", "/todos" or "PUT", "/todos/{id}") answer with status.
// Calls queue up in order.
func (s *Server) FailNext(method, route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + route
	s.faults[key] = append(s.faults[key], status)
}

// Seed replaces both collections
func (s *Server) Seed(todos []models.Todo, categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = slices.Clone(todos)
	s.categories = slices.Clone(categories)
	if s.todos == nil {
		s.todos = []models.Todo{}
	}
	if s.categories == nil {
		s.categories = []models.Category{}
	}
}

// Todos returns a copy of the stored todos
func (s *Server) Todos() []models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.todos)
}

// Categories returns a copy of the stored categories
func (s *Server) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// ============================================================================
// MIDDLEWARE
// ============================================================================

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument counts requests and applies injected faults
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		if status, ok := s.takeFault(r.Method, route); ok {
			writeError(rec, status, "injected failure")
		} else {
			next.ServeHTTP(rec, r)
		}

		s.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		slog.Debug("mock api request", "method", r.Method, "route", route, "status", rec.status)
	})
}

func (s *Server) takeFault(method, route string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + route
	queue := s.faults[key]
	if len(queue) == 0 {
		return 0, false
	}
	s.faults[key] = queue[1:]
	return queue[0], true
}

// ============================================================================
// TODOS
// ============================================================================

func (s *Server) listTodos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Todos())
}

func (s *Server) getTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.todoIndex(id)
	if idx < 0 {
		writeError(w, http.StatusNotFound, "todo not found")
		return
	}
	writeJSON(w, http.StatusOK, s.todos[idx])
}

func (s *Server) createTodo(w http.ResponseWriter, r *http.Request) {
	var todo models.Todo
	if !s.readBody(w, r, s.schemas.todo, &todo) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if todo.ID == "" || s.todoIndex(todo.ID) >= 0 {
		todo.ID = uuid.NewString()
	}
	s.todos = append(s.todos, todo)
	writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) updateTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var todo models.Todo
	if !s.readBody(w, r, s.schemas.todo, &todo) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.todoIndex(id)
	if idx < 0 {
		writeError(w, http.StatusNotFound, "todo not found")
		return
	}
	todo.ID = id
	s.todos[idx] = todo
	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.todoIndex(id)
	if idx < 0 {
		writeError(w, http.StatusNotFound, "todo not found")
		return
	}
	s.todos = slices.Delete(s.todos, idx, idx+1)
	writeJSON(w, http.StatusOK, struct{}{})
}

// todoIndex must be called with s.mu held
func (s *Server) todoIndex(id string) int {
	return slices.IndexFunc(s.todos, func(t models.Todo) bool { return t.ID == id })
}

// ============================================================================
// CATEGORIES
// ============================================================================

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Categories())
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !s.readBody(w, r, s.schemas.category, &category) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	exists := slices.ContainsFunc(s.categories, func(c models.Category) bool { return c.ID == category.ID })
	if category.ID == "" || exists {
		category.ID = uuid.NewString()
	}
	s.categories = append(s.categories, category)
	writeJSON(w, http.StatusCreated, category)
}

// ============================================================================
// HELPERS
// ============================================================================

func (s *Server) readBody(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, out any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return false
	}
	if err := decodeValid(schema, body, out); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
