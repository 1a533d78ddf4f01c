package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RunStatusTUI shows the saved draft in an interactive dashboard until the
// user quits or ctx is cancelled.
func RunStatusTUI(ctx context.Context, key string, load Loader) error {
	m := NewStatusModel(key, load)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	return nil
}

// RenderStatusOnce renders the saved draft once, expanding every step.
// It is used when stdout is not a terminal.
func RenderStatusOnce(key string, load Loader, now time.Time) (string, error) {
	msg := readSnapshot(load)
	if msg.Err != nil {
		return "", msg.Err
	}

	m := NewStatusModel(key, load)
	m.Static = true
	m.Loaded = true
	m.Found = msg.Found
	m.Snapshot = msg.Snapshot
	m.Now = now
	return renderView(m), nil
}
