package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Export returns the command that prints the stored draft JSON.
func Export(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the saved draft as JSON",
		Long: `Print the saved draft snapshot exactly as stored:

  {"draft": {...}, "savedAt": "<ISO-8601 timestamp>"}

Exits with status 1 when no draft has been saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Export(cmd.Context(), *opts)
		},
	}
}
