package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/cli/handler"
	"github.com/thenoetrevino/pastel/internal/cli/styles"
	"github.com/thenoetrevino/pastel/internal/models"
)

// ListCmd returns the category list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long: `List categories with the number of todos in each.

Examples:
  pastel category list
  pastel category list --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

// categorySummary is a category with its todo count
type categorySummary struct {
	models.Category
	TodoCount int `json:"todoCount"`
}

// ListResult is the output of "pastel category list"
type ListResult struct {
	Categories []categorySummary `json:"categories"`
}

// GetIDs lets --quiet print one id per line
func (r ListResult) GetIDs() []string {
	ids := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		ids[i] = c.ID
	}
	return ids
}

// Render implements cli.Renderer
func (r ListResult) Render() string {
	if len(r.Categories) == 0 {
		return styles.SubtitleStyle.Render("No categories")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Categories (%d)", len(r.Categories))))
	for _, c := range r.Categories {
		b.WriteString("\n")
		b.WriteString(styles.RenderCategory(c.Category))
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("  %d todos", c.TodoCount)))
	}
	return b.String()
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	if err := args.CLI.Load(ctx); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, t := range a.Todos.Todos() {
		counts[t.CategoryID]++
	}

	categories := a.Categories.Categories()
	result := ListResult{Categories: make([]categorySummary, len(categories))}
	for i, c := range categories {
		result.Categories[i] = categorySummary{Category: c, TodoCount: counts[c.ID]}
	}
	return result, nil
}
