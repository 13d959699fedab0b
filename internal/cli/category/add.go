package category

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/cli/handler"
	"github.com/thenoetrevino/pastel/internal/cli/styles"
	"github.com/thenoetrevino/pastel/internal/models"
)

// AddCmd returns the category add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category with a generated pastel color",
		Long: `Add a category. The name is trimmed, must be 1-50 characters and must
not match an existing category ignoring case. The color is picked at random
from the pastel range and cannot be changed.

Examples:
  pastel category add Work
  CATEGORY_ID=$(pastel category add "Side projects" --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.SimpleCommand(handler.Func(runAdd)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

// addResult is the output of "pastel category add"
type addResult struct {
	models.Category
}

// Render implements cli.Renderer
func (r addResult) Render() string {
	return "✓ Added category\n  " + styles.RenderCategory(r.Category)
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	// Categories must be cached for the duplicate-name check
	if err := args.CLI.Load(ctx); err != nil {
		return nil, err
	}

	category, err := a.CreateCategory(ctx, strings.Join(args.Args, " "))
	if err != nil {
		return nil, err
	}
	return addResult{Category: *category}, nil
}
