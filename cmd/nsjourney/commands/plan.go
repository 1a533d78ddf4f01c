package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Plan returns the command that runs the interactive journey wizard.
//
// Optional flags:
//
//	--ephemeral: Keep the draft in memory only
func Plan(opts *handlers.Options) *cobra.Command {
	var ephemeral bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Fill in the journey wizard",
		Long: `Walk through the four journey steps: origin, campus, meet-me stop and
journey dates. Finishing Step 4 saves the draft and starts again at Step 1.
A previously saved draft is loaded on start.

Examples:
  # Continue the saved draft
  nsjourney plan

  # Try the wizard without touching the saved draft
  nsjourney plan --ephemeral`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), *opts, ephemeral)
		},
	}

	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Keep the draft in memory only")

	return cmd
}
