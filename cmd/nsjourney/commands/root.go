// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Root returns the root command for the nsjourney CLI.
//
// Global flags are bound once here and shared by every subcommand.
func Root() *cobra.Command {
	opts := &handlers.Options{}

	cmd := &cobra.Command{
		Use:           "nsjourney",
		Short:         "Plan a campus journey and keep it as a local draft",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (default: $XDG_CONFIG_HOME/nsjourney/config.yaml)")
	flags.StringVar(&opts.StoreBackend, "store-backend", "", "Draft store backend: memory, file or sqlite")
	flags.StringVar(&opts.StorePath, "store-path", "", "Draft store file or database path")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	// Journey commands
	cmd.AddCommand(Plan(opts))
	cmd.AddCommand(Status(opts))
	cmd.AddCommand(Reset(opts))
	cmd.AddCommand(Export(opts))

	// Utility commands
	cmd.AddCommand(Forecast(opts))
	cmd.AddCommand(Config(opts))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
