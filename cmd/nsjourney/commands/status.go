package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Status returns the command that shows the saved draft.
func Status(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved journey draft",
		Long: `Show the saved draft step by step, with a validity mark for each step.

In a terminal this opens a dashboard (left/right to move between steps,
r to reload, q to quit). Otherwise the draft is printed once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), *opts)
		},
	}
}
