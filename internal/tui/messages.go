package tui

import "github.com/thenoetrevino/pastel/internal/events"

// RefreshMsg is sent when a store publishes a change
type RefreshMsg struct {
	Event events.Event
}

// opDoneMsg reports the end of a background store operation
type opDoneMsg struct {
	op  string
	err error
}
