package todo

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/cli/handler"
)

// CategoryCmd returns the todo category subcommand
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category <todo_id> [category]",
		Short: "Move a todo to another category",
		Long: `Move a todo to another category, given by id or name.

Examples:
  pastel todo category 3f2a9c work
  pastel todo category 3f2a9c --clear
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: handler.Command(handler.Func(runCategory), parseCategoryFlags),
	}

	cmd.Flags().Bool("clear", false, "Remove the todo from its category")
	handler.AddOutputFlags(cmd)

	return cmd
}

func parseCategoryFlags(cmd *cobra.Command) error {
	clearCategory, _ := cmd.Flags().GetBool("clear")
	if clearCategory && len(cmd.Flags().Args()) > 1 {
		return errors.New("give a category or --clear, not both")
	}
	if !clearCategory && len(cmd.Flags().Args()) < 2 {
		return errors.New("a category is required unless --clear is set")
	}
	return nil
}

func runCategory(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	if err := args.CLI.Load(ctx); err != nil {
		return nil, err
	}

	categoryID := ""
	if len(args.Args) > 1 {
		category, err := handler.ResolveCategory(a.Categories.Categories(), args.Args[1])
		if err != nil {
			return nil, err
		}
		categoryID = category.ID
	}

	todo, err := a.AssignCategory(ctx, args.Args[0], categoryID)
	if err != nil {
		return nil, err
	}
	return newTodoResult("Updated", *todo, a.Categories.Categories()), nil
}
