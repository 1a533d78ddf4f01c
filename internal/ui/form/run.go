package form

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/imamik/nsjourney/internal/wizard"
)

// Action is a navigation choice made after editing a panel.
type Action int

// Navigation actions.
const (
	ActionForward Action = iota
	ActionBack
	ActionReset
	ActionQuit
)

// Controller is the part of the wizard Run drives.
type Controller interface {
	Advance() error
	Retreat()
	ResetAll() error
}

// Function variables for dependency injection in tests.
var (
	editPanel    = defaultEditPanel
	chooseAction = defaultChooseAction
)

// Run drives c until the user quits, aborts the form, or ctx is done. The
// wizard must already be bootstrapped so p shows a panel. Storage failures
// are shown on the status line and do not end the session.
func Run(ctx context.Context, c Controller, p *Panel, out io.Writer) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintln(out, RenderStatus(p))

		if err := editPanel(ctx, p); err != nil {
			if isAbort(err) {
				return nil
			}
			return fmt.Errorf("form failed: %w", err)
		}

		action, err := chooseAction(ctx, p.Navigation())
		if err != nil {
			if isAbort(err) {
				return nil
			}
			return fmt.Errorf("navigation failed: %w", err)
		}

		// Advance and ResetAll put storage errors on the status line and log
		// them, so the returned error only ends up there too.
		switch action {
		case ActionForward:
			_ = c.Advance()
		case ActionBack:
			c.Retreat()
		case ActionReset:
			_ = c.ResetAll()
		case ActionQuit:
			return nil
		}
	}
}

// actionOptions lists the choices offered for nav, forward first.
func actionOptions(nav wizard.Navigation) []huh.Option[Action] {
	var opts []huh.Option[Action]
	if nav.ForwardEnabled {
		label := nav.ForwardLabel
		if label == "" {
			label = wizard.LabelNext
		}
		opts = append(opts, huh.NewOption(label, ActionForward))
	}
	if nav.BackEnabled {
		opts = append(opts, huh.NewOption("Back", ActionBack))
	}
	opts = append(opts,
		huh.NewOption("Reset", ActionReset),
		huh.NewOption("Quit", ActionQuit),
	)
	return opts
}

func defaultEditPanel(ctx context.Context, p *Panel) error {
	step := p.Visible()
	if !step.Valid() {
		return fmt.Errorf("no panel visible")
	}
	return huh.NewForm(stepGroup(p, step)).RunWithContext(ctx)
}

func defaultChooseAction(ctx context.Context, nav wizard.Navigation) (Action, error) {
	action := ActionForward
	if !nav.ForwardEnabled {
		action = ActionQuit
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("What next?").
				Options(actionOptions(nav)...).
				Value(&action),
		),
	).RunWithContext(ctx)

	return action, err
}

func isAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
