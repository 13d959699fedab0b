// Package status implements "pastel status"
package status

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/app"
	"github.com/thenoetrevino/pastel/internal/cli/handler"
	"github.com/thenoetrevino/pastel/internal/cli/styles"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show backend connectivity and store state",
		Long: `Load todos and categories once and report what happened.

A failing backend is reported, not treated as an error.

Examples:
  pastel status
  pastel status --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(runStatus)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

// Result is the output of "pastel status"
type Result struct {
	app.Status
	Reachable bool `json:"reachable"`
}

// GetID lets --quiet print the backend URL
func (r Result) GetID() string {
	return r.BaseURL
}

// Render implements cli.Renderer
func (r Result) Render() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("pastel status"))

	row := func(label, value string) {
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(styles.ValueStyle.Render(value))
	}

	reachable := "yes"
	if !r.Reachable {
		reachable = "no"
	}
	row("Backend", r.BaseURL)
	row("Reachable", reachable)
	row("Todos", fmt.Sprintf("%d (%d completed)", r.Todos, r.Completed))
	row("Categories", fmt.Sprintf("%d", r.Categories))
	row("Requests", fmt.Sprintf("%d sent, %d http errors, %d network errors",
		r.Requests.RequestsSent, r.Requests.HTTPErrors, r.Requests.NetworkErrors))

	for _, msg := range []string{r.TodoError, r.CategoryError} {
		if msg != "" {
			b.WriteString("\n")
			b.WriteString(styles.ErrorStyle.Render("✗ " + msg))
		}
	}
	return b.String()
}

func runStatus(ctx context.Context, args *handler.Arguments) (any, error) {
	// load failures land in the store error state, which Status reports
	err := args.CLI.Load(ctx)
	return Result{Status: args.CLI.App.Status(), Reachable: err == nil}, nil
}
