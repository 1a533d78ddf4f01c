package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/nsjourney/internal/config"
)

// Factory function variables for the config commands - can be replaced in tests.
var (
	// configFileExists checks if a file exists.
	configFileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// readConfigFile reads a config file from disk.
	readConfigFile = os.ReadFile

	// saveConfig writes a config file.
	saveConfig = config.Save
)

// configPath returns the --config path or the per-user default.
func configPath(opts Options) string {
	if opts.ConfigPath != "" {
		return opts.ConfigPath
	}
	return config.DefaultConfigPath()
}

// ConfigInit writes a config file holding the defaults plus any store flags.
// An existing file is only replaced when force is set.
func ConfigInit(_ context.Context, opts Options, force bool) error {
	path := configPath(opts)
	if configFileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if opts.StoreBackend != "" {
		cfg.Store.Backend = opts.StoreBackend
	}
	if opts.StorePath != "" {
		cfg.Store.Path = opts.StorePath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := saveConfig(cfg, path); err != nil {
		return err
	}

	fmt.Println("Configuration saved!")
	fmt.Printf("  File:    %s\n", path)
	printConfigSummary(cfg)
	return nil
}

// ConfigValidate checks a config file on its own, without .env or
// environment overrides.
func ConfigValidate(_ context.Context, opts Options) error {
	path := configPath(opts)
	data, err := readConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := config.LoadFromBytes(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s is valid.\n", path)
	printConfigSummary(cfg)
	return nil
}

func printConfigSummary(cfg *config.Config) {
	if path := cfg.StorePath(); path != "" {
		fmt.Printf("  Store:   %s (%s)\n", cfg.Store.Backend, path)
	} else {
		fmt.Printf("  Store:   %s\n", cfg.Store.Backend)
	}
	fmt.Printf("  Key:     %s\n", cfg.Store.Key)
	fmt.Printf("  Units:   %s\n", cfg.Forecast.Units)
}
