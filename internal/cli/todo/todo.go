// Package todo implements the "pastel todo" commands
package todo

import (
	"github.com/spf13/cobra"
)

// TodoCmd returns the todo parent command
func TodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(CategoryCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
