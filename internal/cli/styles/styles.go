package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/pastel/internal/config"
	"github.com/thenoetrevino/pastel/internal/models"
)

// chipText is the foreground on category backgrounds. Pastels are light, so
// black stays readable on every generated color.
const chipText = "#000000"

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Category:"
	ValueStyle    lipgloss.Style // For field values
	DoneStyle     lipgloss.Style // Completed todo text

	// Status styles
	ErrorStyle lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(theme.Subtle))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderCategoryChip renders a category name as black text on its color
func RenderCategoryChip(name, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(chipText)).
		Background(lipgloss.Color(hexColor)).
		Padding(0, 1).
		Render(name)
}

// Checkbox returns "[x]" for done todos and "[ ]" otherwise
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// RenderTodo renders one todo as "[x] text  <category chip>  (id)".
// Uncategorized todos and dangling category references get no chip.
func RenderTodo(todo models.Todo, categories []models.Category) string {
	text := ValueStyle.Render(todo.Text)
	if todo.Done {
		text = DoneStyle.Render(todo.Text)
	}

	line := fmt.Sprintf("%s %s", Checkbox(todo.Done), text)
	if category, ok := models.FindCategory(categories, todo.CategoryID); ok {
		line += "  " + RenderCategoryChip(category.Name, models.CategoryColor(categories, todo.CategoryID))
	}
	return line + "  " + SubtitleStyle.Render("("+todo.ID+")")
}

// RenderCategory renders one category as its chip followed by its id
func RenderCategory(category models.Category) string {
	color := category.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}
	return RenderCategoryChip(category.Name, color) + "  " + SubtitleStyle.Render("("+category.ID+")")
}
