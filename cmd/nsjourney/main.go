// Package main is the entry point for the nsjourney CLI.
//
// nsjourney collects a four-step journey plan (origin, campus, meet-me stop
// and travel dates), keeps it as a local draft between runs, and can show
// the weather forecast for a city.
//
// Commands: plan, status, reset, export, forecast, config.
//
// For detailed usage information, run:
//
//	nsjourney --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/nsjourney/cmd/nsjourney/commands"
	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, handlers.Describe(err))
		os.Exit(1)
	}
}
