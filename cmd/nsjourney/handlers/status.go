package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/nsjourney/internal/journey"
	"github.com/imamik/nsjourney/internal/ui/tui"
	"github.com/imamik/nsjourney/internal/wizard"
)

// Factory function variables for status - can be replaced in tests.
var (
	// runStatusTUI runs the interactive dashboard.
	runStatusTUI = tui.RunStatusTUI

	// now returns the reference time for the static view.
	now = time.Now
)

// Status shows the saved draft. Interactive terminals get the dashboard,
// anything else gets a single static rendering.
func Status(ctx context.Context, opts Options) error {
	s, err := openSession(opts, "status")
	if err != nil {
		return err
	}
	defer s.close()

	key := s.cfg.Store.Key
	load := func() (journey.Snapshot, error) {
		snap, err := wizard.LoadSnapshot(s.kv, key)
		if err != nil {
			s.log.V(1).Info("no usable draft", "reason", err.Error())
		}
		return snap, err
	}

	if isInteractiveTTY() {
		return runStatusTUI(ctx, key, load)
	}

	out, err := tui.RenderStatusOnce(key, load, now())
	if err != nil {
		return fmt.Errorf("failed to read draft: %w", err)
	}
	fmt.Print(out)
	return nil
}
