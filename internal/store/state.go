package store

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/models"
)

// loadingState is the loading/error bookkeeping embedded in both stores.
// Loading is tracked per request so concurrent operations do not clobber
// each other: the store is loading while any tracked request is in flight.
type loadingState struct {
	mu       sync.RWMutex
	inflight map[uuid.UUID]string
	err      string

	cfg storeConfig
}

func newLoadingState(cfg storeConfig) loadingState {
	return loadingState{
		inflight: make(map[uuid.UUID]string),
		cfg:      cfg,
	}
}

// beginLoading clears the error and registers a tracked request
func (l *loadingState) beginLoading(op string) uuid.UUID {
	id := uuid.New()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = ""
	l.inflight[id] = op
	return id
}

// endLoading must be called with l.mu held
func (l *loadingState) endLoading(id uuid.UUID) {
	delete(l.inflight, id)
}

// fail records err as the store's error, logs it and announces it.
// The returned error wraps err with message.
func (l *loadingState) fail(message string, err error) error {
	return l.failRequest(uuid.Nil, message, err)
}

// failRequest is fail for a tracked request. The error is recorded and the
// request unregistered under one lock, so readers never see a finished
// request without its error.
func (l *loadingState) failRequest(id uuid.UUID, message string, err error) error {
	wrapped := fmt.Errorf("%s: %w", message, err)

	l.mu.Lock()
	l.endLoading(id)
	l.err = wrapped.Error()
	l.mu.Unlock()

	l.cfg.logger.Error(message, "error", err)
	l.publish(events.Event{Type: events.EventStoreError, Error: wrapped.Error()})
	return wrapped
}

func (l *loadingState) publish(event events.Event) {
	if l.cfg.publisher == nil {
		return
	}
	l.cfg.publisher.Publish(event)
}

// IsLoading reports whether a fetch or add is in flight
func (l *loadingState) IsLoading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.inflight) > 0
}

// LastError returns the message of the last failure, or "" if none
func (l *loadingState) LastError() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// ClearError dismisses the current error message
func (l *loadingState) ClearError() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = ""
}

// loadingSnapshot must be called with l.mu held
func (l *loadingState) loadingSnapshot() models.LoadingState {
	return models.LoadingState{
		IsLoading: len(l.inflight) > 0,
		Error:     l.err,
	}
}

// fallbackID is used when the backend returns a record without an id
func (l *loadingState) fallbackID() string {
	id := strconv.FormatInt(l.cfg.now().UnixMilli(), 10)
	l.cfg.logger.Debug("backend returned record without id, using timestamp", "id", id)
	return id
}

// Pending returns the names of tracked operations currently in flight
func (l *loadingState) Pending() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ops := make([]string, 0, len(l.inflight))
	for _, op := range l.inflight {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
