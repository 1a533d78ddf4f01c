package handlers

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoDraft is returned by Export when nothing has been saved.
var ErrNoDraft = errors.New("no saved draft")

// Export prints the stored snapshot exactly as persisted.
func Export(_ context.Context, opts Options) error {
	s, err := openSession(opts, "export")
	if err != nil {
		return err
	}
	defer s.close()

	raw, ok, err := s.kv.Get(s.cfg.Store.Key)
	if err != nil {
		return fmt.Errorf("failed to read draft: %w", err)
	}
	if !ok || raw == "" {
		return ErrNoDraft
	}

	fmt.Println(raw)
	return nil
}
