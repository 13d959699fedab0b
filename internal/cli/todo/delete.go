package todo

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/cli/handler"
)

// DeleteCmd returns the todo delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <todo_id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.Func(runDelete)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	if err := args.CLI.Load(ctx); err != nil {
		return nil, err
	}

	id := args.Args[0]
	todo, _ := a.Todos.Get(id)
	if err := a.DeleteTodo(ctx, id); err != nil {
		return nil, err
	}
	return deleteResult{ID: id, Text: todo.Text, Deleted: true}, nil
}
