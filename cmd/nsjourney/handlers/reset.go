package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/nsjourney/internal/ui/form"
	"github.com/imamik/nsjourney/internal/wizard"
)

// Reset clears the saved draft without opening the form.
func Reset(_ context.Context, opts Options) error {
	s, err := openSession(opts, "reset")
	if err != nil {
		return err
	}
	defer s.close()

	panel := form.NewPanel()
	w := wizard.New(panel, s.kv,
		wizard.WithKey(s.cfg.Store.Key),
		wizard.WithLogger(s.log.WithName("wizard")),
	)

	if err := w.ResetAll(); err != nil {
		return err
	}

	fmt.Println(w.Status().Text)
	return nil
}
