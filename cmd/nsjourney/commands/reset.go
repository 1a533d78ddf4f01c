package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Reset returns the command that clears the saved draft.
func Reset(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved journey draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Reset(cmd.Context(), *opts)
		},
	}
}
