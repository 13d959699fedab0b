package events

// Publisher defines the interface stores use to announce changes.
// Depending on behavior rather than *Bus keeps stores testable.
type Publisher interface {
	// Publish delivers the event to current subscribers without blocking
	Publish(event Event)
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)
