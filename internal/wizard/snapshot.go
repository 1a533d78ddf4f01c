package wizard

import (
	"errors"
	"fmt"

	"github.com/imamik/nsjourney/internal/journey"
)

// ErrNoSnapshot is returned by LoadSnapshot when the store has no draft.
var ErrNoSnapshot = errors.New("no saved draft")

// LoadSnapshot reads and decodes the snapshot stored under key. It returns
// ErrNoSnapshot for a missing key and an error wrapping
// journey.ErrMalformedSnapshot for unreadable data.
func LoadSnapshot(s Store, key string) (journey.Snapshot, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return journey.Snapshot{}, fmt.Errorf("failed to read draft: %w", err)
	}
	if !ok || raw == "" {
		return journey.Snapshot{}, ErrNoSnapshot
	}
	return journey.DecodeSnapshot(raw)
}
