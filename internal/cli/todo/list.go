package todo

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/cli"
	"github.com/thenoetrevino/pastel/internal/cli/handler"
	"github.com/thenoetrevino/pastel/internal/models"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long: `List todos with their category.

Examples:
  # All todos
  pastel todo list

  # Only open todos in the Work category
  pastel todo list --category=work --pending

  # IDs only, for scripting
  pastel todo list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runList), parseListFlags),
	}

	cmd.Flags().String("category", "", "Only todos in this category (id or name)")
	cmd.Flags().Bool("done", false, "Only completed todos")
	cmd.Flags().Bool("pending", false, "Only todos not yet done")
	handler.AddOutputFlags(cmd)

	return cmd
}

func parseListFlags(cmd *cobra.Command) error {
	done, _ := cmd.Flags().GetBool("done")
	pending, _ := cmd.Flags().GetBool("pending")
	if done && pending {
		return errDoneAndPending
	}
	return nil
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := args.CLI.Load(ctx); err != nil {
		return nil, err
	}

	categories := args.CLI.App.Categories.Categories()
	todos := args.CLI.App.Todos.Todos()

	if args.Has("category") {
		category, err := handler.ResolveCategory(categories, args.GetString("category", ""))
		if err != nil {
			return nil, err
		}
		todos = filter(todos, func(t models.Todo) bool { return t.CategoryID == category.ID })
	}
	switch {
	case args.GetBool("done"):
		todos = filter(todos, func(t models.Todo) bool { return t.Done })
	case args.GetBool("pending"):
		todos = filter(todos, func(t models.Todo) bool { return !t.Done })
	}

	state := models.TodoState{Todos: todos}
	completed, _ := state.Stats()

	return ListResult{
		Todos:      todos,
		Total:      len(todos),
		Completed:  completed,
		categories: categories,
	}, nil
}

func filter(todos []models.Todo, keep func(models.Todo) bool) []models.Todo {
	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

var _ cli.Renderer = ListResult{}
