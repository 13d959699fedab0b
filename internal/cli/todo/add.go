package todo

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/cli/handler"
)

// AddCmd returns the todo add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Long: `Add a todo, optionally tagged with a category.

Text is trimmed and must be 1-200 characters.

Examples:
  pastel todo add "Buy milk"
  pastel todo add Buy milk --category=errands

  # Capture the new id
  TODO_ID=$(pastel todo add "Buy milk" --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.SimpleCommand(handler.Func(runAdd)),
	}

	cmd.Flags().String("category", "", "Category id or name")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	if err := args.CLI.Load(ctx); err != nil {
		return nil, err
	}

	category, err := handler.ResolveCategory(a.Categories.Categories(), args.GetString("category", ""))
	if err != nil {
		return nil, err
	}

	todo, err := a.CreateTodo(ctx, strings.Join(args.Args, " "), category.ID)
	if err != nil {
		return nil, err
	}
	return newTodoResult("Added", *todo, a.Categories.Categories()), nil
}
