package store

import (
	"context"
	"slices"

	"github.com/thenoetrevino/pastel/internal/api"
	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/models"
)

// CategoryStore owns the local copy of the categories collection.
// Categories can only be listed and created.
type CategoryStore struct {
	loadingState
	client     api.CategoryClient
	categories []models.Category
}

// NewCategoryStore creates an empty store backed by client
func NewCategoryStore(client api.CategoryClient, opts ...Option) *CategoryStore {
	return &CategoryStore{
		loadingState: newLoadingState(newStoreConfig(opts)),
		client:       client,
		categories:   []models.Category{},
	}
}

// FetchAll replaces the cache with the backend's collection. Failures are
// recorded in LastError and logged, never returned.
func (s *CategoryStore) FetchAll(ctx context.Context) {
	reqID := s.beginLoading("fetch categories")

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		_ = s.failRequest(reqID, "failed to fetch categories", err)
		return
	}

	s.mu.Lock()
	s.categories = slices.Clone(categories)
	s.endLoading(reqID)
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventCategoriesChanged})
}

// AddCategory creates a category with a freshly generated pastel color
func (s *CategoryStore) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	reqID := s.beginLoading("add category")

	created, err := s.client.CreateCategory(ctx, models.NewCategory{
		Name:  name,
		Color: s.cfg.colors(),
	})
	if err != nil {
		return nil, s.failRequest(reqID, "failed to add category", err)
	}

	category := *created
	if category.ID == "" {
		category.ID = s.fallbackID()
	}

	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.endLoading(reqID)
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventCategoriesChanged, ID: category.ID})
	return &category, nil
}

// Categories returns a copy of the cached categories in order
func (s *CategoryStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// Names returns the cached category names, for duplicate checks
func (s *CategoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CategoryNames(s.categories)
}

// ColorFor returns the display color for a todo's category id
func (s *CategoryStore) ColorFor(categoryID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CategoryColor(s.categories, categoryID)
}

// State returns a consistent snapshot of categories, loading flag and error
func (s *CategoryStore) State() models.CategoryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CategoryState{
		LoadingState: s.loadingSnapshot(),
		Categories:   slices.Clone(s.categories),
	}
}
