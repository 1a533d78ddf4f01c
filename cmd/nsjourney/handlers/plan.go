package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/nsjourney/internal/config"
	"github.com/imamik/nsjourney/internal/ui/form"
	"github.com/imamik/nsjourney/internal/wizard"
)

// Factory function variables for plan - can be replaced in tests.
var (
	// runForm drives the interactive form loop.
	runForm = form.Run
)

// Plan restores the saved draft and runs the interactive wizard. With
// ephemeral set, the draft lives in memory and is gone on exit.
func Plan(ctx context.Context, opts Options, ephemeral bool) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if ephemeral {
		cfg.Store.Backend = config.BackendMemory
		cfg.Store.Path = ""
	}

	s, err := openSessionWith(cfg, opts, "plan")
	if err != nil {
		return err
	}
	defer s.close()

	panel := form.NewPanel()
	w := wizard.New(panel, s.kv,
		wizard.WithKey(cfg.Store.Key),
		wizard.WithLogger(s.log.WithName("wizard")),
	)

	printPlanWelcome(ephemeral)
	w.Bootstrap()

	if err := runForm(ctx, w, panel, os.Stdout); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	s.log.V(1).Info("wizard finished", "step", int(w.Step()))
	return nil
}

// printPlanWelcome prints the banner shown before the first step.
func printPlanWelcome(ephemeral bool) {
	fmt.Println()
	fmt.Println("nsjourney - plan your journey")
	fmt.Println("=============================")
	fmt.Println()
	fmt.Println("Fill in the four steps. The draft is saved when you finish Step 4.")
	if ephemeral {
		fmt.Println("Ephemeral mode: nothing is written to disk.")
	}
}
