package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Config returns the command group for the configuration file.
//
// The file location follows the global --config flag.
func Config(opts *handlers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or check the configuration file",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(configInit(opts))
	cmd.AddCommand(configValidate(opts))

	return cmd
}

// configInit writes a default configuration file.
//
// Flags:
//
//	--force: Overwrite an existing file
func configInit(opts *handlers.Options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Long: `Write a configuration file with the default settings.

The global --store-backend and --store-path flags are written into the
file when given. An existing file is left alone unless --force is set.

Examples:
  nsjourney config init
  nsjourney --store-backend sqlite config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ConfigInit(cmd.Context(), *opts, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func configValidate(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		Long: `Parse and validate the configuration file on its own.

The .env file and environment overrides are not applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ConfigValidate(cmd.Context(), *opts)
		},
	}
}
