// Package tui is the interactive terminal view of the todo and category stores
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/pastel/internal/app"
	"github.com/thenoetrevino/pastel/internal/async"
	"github.com/thenoetrevino/pastel/internal/config"
	"github.com/thenoetrevino/pastel/internal/events"
	"github.com/thenoetrevino/pastel/internal/models"
	"github.com/thenoetrevino/pastel/internal/tui/state"
)

// eventBuffer is the queue size of the model's bus subscription
const eventBuffer = 64

// Model represents the application state for the TUI.
// Todos and categories are read from the stores on every render; the model
// only keeps presentation state.
type Model struct {
	ctx context.Context
	app *app.App

	keys   keyMap
	styles styles

	ui            *state.UIState
	notifications *state.NotificationState

	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	events      <-chan events.Event
	unsubscribe func()

	// pendingDelete is the todo awaiting confirmation in DeleteConfirmMode
	pendingDelete models.Todo
}

// New creates the TUI model and subscribes it to the app's change feed.
// Call Close when done to drop the subscription.
func New(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	input := textinput.New()
	input.Prompt = "> "

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	feed, unsubscribe := a.Bus().Subscribe(eventBuffer)

	return Model{
		ctx:           ctx,
		app:           a,
		keys:          newKeyMap(cfg.KeyMappings),
		styles:        newStyles(cfg.Theme),
		ui:            state.NewUIState(),
		notifications: state.NewNotificationState(),
		input:         input,
		spinner:       spin,
		help:          help.New(),
		events:        feed,
		unsubscribe:   unsubscribe,
	}
}

// Init loads both collections and starts listening for store changes
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitForEvent(), m.spinner.Tick)
}

// Close drops the bus subscription
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// waitForEvent returns a command that blocks for the next store event and
// delivers it as RefreshMsg. It returns nil once the feed is closed.
func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case event, ok := <-m.events:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// run starts fn in the background right away and returns a command that
// reports its completion as opDoneMsg
func (m Model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	task := async.Go(m.ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return func() tea.Msg {
		_, err := task.Await(m.ctx)
		return opDoneMsg{op: op, err: err}
	}
}

func (m Model) load() tea.Cmd {
	return m.run("load", m.app.Load)
}

// visibleTodos returns the todos shown with the current category filter
func (m Model) visibleTodos() []models.Todo {
	todos := m.app.Todos.Todos()
	filter := m.ui.FilterCategoryID()
	if filter == "" {
		return todos
	}

	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if t.CategoryID == filter {
			out = append(out, t)
		}
	}
	return out
}

// selectedTodo returns the highlighted todo, if any
func (m Model) selectedTodo() (models.Todo, bool) {
	todos := m.visibleTodos()
	idx := m.ui.Selected()
	if idx < 0 || idx >= len(todos) {
		return models.Todo{}, false
	}
	return todos[idx], true
}

// nextCategoryID returns the category after current in list order. An
// uncategorized or dangling current starts at the first category; the last
// category wraps around to none.
func nextCategoryID(categories []models.Category, current string) string {
	if len(categories) == 0 {
		return ""
	}
	for i, c := range categories {
		if c.ID == current {
			if i == len(categories)-1 {
				return ""
			}
			return categories[i+1].ID
		}
	}
	return categories[0].ID
}
