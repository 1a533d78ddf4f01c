// Package tui provides a Bubble Tea dashboard for the saved journey draft.
package tui

import "github.com/imamik/nsjourney/internal/journey"

// SnapshotMsg carries the result of reading the saved draft.
type SnapshotMsg struct {
	Snapshot journey.Snapshot
	Found    bool
	Err      error
}

// TickMsg is sent periodically to refresh relative timestamps.
type TickMsg struct{}

// ErrMsg carries an error that ends the program.
type ErrMsg struct{ Err error }
