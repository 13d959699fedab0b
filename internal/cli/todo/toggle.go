package todo

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/cli/handler"
)

// ToggleCmd returns the todo toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <todo_id>",
		Short: "Flip a todo between done and not done",
		Long: `Flip a todo between done and not done.

Examples:
  pastel todo toggle 3f2a9c
  pastel todo toggle 3f2a9c --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.Func(runToggle)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runToggle(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	if err := args.CLI.Load(ctx); err != nil {
		return nil, err
	}

	todo, err := a.ToggleTodo(ctx, args.Args[0])
	if err != nil {
		return nil, err
	}

	verb := "Reopened"
	if todo.Done {
		verb = "Completed"
	}
	return newTodoResult(verb, *todo, a.Categories.Categories()), nil
}
