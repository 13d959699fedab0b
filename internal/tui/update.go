package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/pastel/internal/app"
	"github.com/thenoetrevino/pastel/internal/models"
	"github.com/thenoetrevino/pastel/internal/tui/state"
	"github.com/thenoetrevino/pastel/internal/validation"
)

// Update handles all messages and key presses
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case RefreshMsg:
		m.ui.Clamp(len(m.visibleTodos()))
		return m, m.waitForEvent()

	case opDoneMsg:
		m.handleOpDone(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.ui.Mode() {
		case state.AddTodoMode, state.AddCategoryMode:
			return m.handleInput(msg)
		case state.DeleteConfirmMode:
			return m.handleDeleteConfirm(msg)
		case state.HelpMode:
			m.ui.SetMode(state.NormalMode)
			return m, nil
		default:
			return m.handleNormal(msg)
		}
	}

	return m, nil
}

// handleOpDone surfaces errors the stores do not report themselves.
// Backend failures already land in the stores' error state and are shown
// from there.
func (m Model) handleOpDone(msg opDoneMsg) {
	if msg.err == nil {
		return
	}
	if validation.IsValidationError(msg.err) || app.IsNotFound(msg.err) {
		m.notifications.Add(state.LevelError, msg.err.Error())
	}
}

func (m Model) handleNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.ui.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.ui.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.ui.MoveDown(len(m.visibleTodos()))
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		todo, ok := m.selectedTodo()
		if !ok {
			return m, nil
		}
		return m, m.run("toggle", func(ctx context.Context) error {
			_, err := m.app.ToggleTodo(ctx, todo.ID)
			return err
		})

	case key.Matches(msg, m.keys.Cycle):
		todo, ok := m.selectedTodo()
		if !ok {
			return m, nil
		}
		next := nextCategoryID(m.app.Categories.Categories(), todo.CategoryID)
		return m, m.run("category", func(ctx context.Context) error {
			_, err := m.app.AssignCategory(ctx, todo.ID, next)
			return err
		})

	case key.Matches(msg, m.keys.Delete):
		todo, ok := m.selectedTodo()
		if !ok {
			return m, nil
		}
		m.pendingDelete = todo
		m.ui.SetMode(state.DeleteConfirmMode)
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.ui.SetFilterCategoryID(nextCategoryID(m.app.Categories.Categories(), m.ui.FilterCategoryID()))
		return m, nil

	case key.Matches(msg, m.keys.AddTodo):
		return m.startInput(state.AddTodoMode, "New todo...", validation.MaxTodoLength)

	case key.Matches(msg, m.keys.AddCategory):
		return m.startInput(state.AddCategoryMode, "New category name...", validation.MaxCategoryLength)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()

	case key.Matches(msg, m.keys.ClearError):
		m.app.Todos.ClearError()
		m.app.Categories.ClearError()
		m.notifications.Clear()
		return m, nil
	}

	return m, nil
}

// inputSlack lets typed text run past the validation limit so padding does
// not eat into it and overlong input is reported instead of cut off
const inputSlack = 20

func (m Model) startInput(mode state.Mode, placeholder string, limit int) (tea.Model, tea.Cmd) {
	m.ui.SetMode(mode)
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.CharLimit = limit + inputSlack
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) stopInput() Model {
	m.ui.SetMode(state.NormalMode)
	m.input.SetValue("")
	m.input.Blur()
	return m
}

func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.stopInput(), nil

	case tea.KeyEnter:
		value := m.input.Value()
		mode := m.ui.Mode()
		m = m.stopInput()

		if mode == state.AddCategoryMode {
			return m, m.run("add category", func(ctx context.Context) error {
				_, err := m.app.CreateCategory(ctx, value)
				return err
			})
		}

		// New todos land in the category being viewed
		categoryID := m.ui.FilterCategoryID()
		return m, m.run("add todo", func(ctx context.Context) error {
			_, err := m.app.CreateTodo(ctx, value, categoryID)
			return err
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		todo := m.pendingDelete
		m.pendingDelete = models.Todo{}
		m.ui.SetMode(state.NormalMode)
		return m, m.run("delete", func(ctx context.Context) error {
			return m.app.DeleteTodo(ctx, todo.ID)
		})
	case "n", "esc":
		m.pendingDelete = models.Todo{}
		m.ui.SetMode(state.NormalMode)
	}
	return m, nil
}
