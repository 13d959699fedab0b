package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTodosChanged      EventType = "todos_changed"
	EventCategoriesChanged EventType = "categories_changed"
	EventStoreError        EventType = "store_error"
)

// Event represents a change to a store's cache or error state
type Event struct {
	Type       EventType
	ID         string    // Record that changed, empty for wholesale reloads
	Error      string    // Set for EventStoreError
	Timestamp  time.Time // When the event was published
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
