// Package handlers implements the business logic behind the CLI commands.
//
// Each exported function corresponds to one command. Dependencies that touch
// the terminal, the store or the network are held in package-level function
// variables so tests can replace them.
package handlers
