// Package config holds the nsjourney runtime configuration.
//
// A [Config] starts from [Default], is overlaid by an optional YAML file,
// then by a .env file and environment variables. Command-line flags are
// applied last by the CLI handlers before [Config.Validate] runs.
package config
