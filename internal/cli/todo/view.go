package todo

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/pastel/internal/cli/styles"
	"github.com/thenoetrevino/pastel/internal/models"
)

// todoResult is the output of commands acting on a single todo
type todoResult struct {
	models.Todo
	Category *models.Category `json:"category,omitempty"`

	verb       string
	categories []models.Category
}

func newTodoResult(verb string, todo models.Todo, categories []models.Category) todoResult {
	result := todoResult{Todo: todo, verb: verb, categories: categories}
	if category, ok := models.FindCategory(categories, todo.CategoryID); ok {
		result.Category = &category
	}
	return result
}

// Render implements cli.Renderer
func (r todoResult) Render() string {
	return fmt.Sprintf("✓ %s todo\n  %s", r.verb, styles.RenderTodo(r.Todo, r.categories))
}

// ListResult is the output of "pastel todo list"
type ListResult struct {
	Todos     []models.Todo `json:"todos"`
	Total     int           `json:"total"`
	Completed int           `json:"completed"`

	categories []models.Category
}

// GetIDs lets --quiet print one id per line
func (r ListResult) GetIDs() []string {
	ids := make([]string, len(r.Todos))
	for i, t := range r.Todos {
		ids[i] = t.ID
	}
	return ids
}

// Render implements cli.Renderer
func (r ListResult) Render() string {
	if len(r.Todos) == 0 {
		return styles.SubtitleStyle.Render("No todos")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Todos (%d/%d done)", r.Completed, r.Total)))
	for _, t := range r.Todos {
		b.WriteString("\n")
		b.WriteString(styles.RenderTodo(t, r.categories))
	}
	return b.String()
}

// deleteResult is the output of "pastel todo delete"
type deleteResult struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Deleted bool   `json:"deleted"`
}

// GetID lets --quiet print the deleted id
func (r deleteResult) GetID() string {
	return r.ID
}

// Render implements cli.Renderer
func (r deleteResult) Render() string {
	return fmt.Sprintf("✓ Deleted todo '%s' (%s)", r.Text, r.ID)
}
