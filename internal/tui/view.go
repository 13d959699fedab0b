package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/pastel/internal/models"
	"github.com/thenoetrevino/pastel/internal/tui/state"
)

// View renders the header, the todo list, errors and the input/help line
// Required by tea.Model interface
func (m Model) View() string {
	if m.ui.Mode() == state.HelpMode {
		return m.styles.title.Render("pastel keys") + "\n\n" +
			m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
			m.styles.subtle.Render("press any key to go back")
	}

	todoState := m.app.Todos.State()
	categoryState := m.app.Categories.State()
	categories := categoryState.Categories

	var b strings.Builder
	b.WriteString(m.renderHeader(todoState, categoryState))
	b.WriteString("\n\n")
	b.WriteString(m.renderList(categories))
	b.WriteString("\n")

	for _, msg := range []string{categoryState.Error, todoState.Error} {
		if msg != "" {
			b.WriteString("\n" + m.styles.errorBanner.Render("✗ "+msg))
		}
	}
	for _, n := range m.notifications.All() {
		style := m.styles.subtle
		if n.Level == state.LevelError {
			style = m.styles.errorBanner
		}
		b.WriteString("\n" + style.Render(n.Message))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader(todos models.TodoState, categories models.CategoryState) string {
	done, pending := todos.Stats()
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.styles.title.Render("Todos"),
		m.styles.done.Render("✔"), done,
		m.styles.subtle.Render("•"), pending,
		m.styles.accent.Render("Total"), len(todos.Todos),
	)

	if filter := m.ui.FilterCategoryID(); filter != "" {
		name := filter
		if c, ok := models.FindCategory(categories.Categories, filter); ok {
			name = c.Name
		}
		header += "   " + m.styles.row(models.CategoryColor(categories.Categories, filter), false).Render(name)
	}

	if todos.IsLoading || categories.IsLoading {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m Model) renderList(categories []models.Category) string {
	todos := m.visibleTodos()
	if len(todos) == 0 {
		return m.styles.subtle.Render(fmt.Sprintf("  No todos. Press %s to add one.", m.keys.AddTodo.Help().Key))
	}

	offset := m.ui.ScrollOffset()
	end := min(offset+m.ui.ListHeight(), len(todos))

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		lines = append(lines, m.renderTodo(todos[i], categories, i == m.ui.Selected()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTodo(todo models.Todo, categories []models.Category, selected bool) string {
	prefix := "  "
	if selected {
		prefix = m.styles.cursor.Render("> ")
	}

	box := "☐"
	if todo.Done {
		box = "☑"
	}

	line := prefix + m.styles.row(models.CategoryColor(categories, todo.CategoryID), todo.Done).
		Render(box+" "+todo.Text)
	if c, ok := models.FindCategory(categories, todo.CategoryID); ok {
		line += " " + m.styles.subtle.Render(c.Name)
	}
	return line
}

func (m Model) renderFooter() string {
	switch m.ui.Mode() {
	case state.AddTodoMode, state.AddCategoryMode:
		label := "Add todo"
		if m.ui.Mode() == state.AddCategoryMode {
			label = "Add category"
		}
		return m.styles.prompt.Render(label) + " " + m.input.View() + "\n" +
			m.styles.subtle.Render("enter to save • esc to cancel")

	case state.DeleteConfirmMode:
		return m.styles.errorBanner.Render(fmt.Sprintf("Delete '%s'? (y/n)", m.pendingDelete.Text))
	}

	return m.styles.statusBar.Render(m.ui.Mode().String()) + " " + m.help.ShortHelpView(m.keys.ShortHelp())
}
