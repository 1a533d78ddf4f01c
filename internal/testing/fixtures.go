package testing

import (
	"context"
	"testing"
	"time"

	"github.com/imamik/nsjourney/internal/journey"
)

// SavedAt is the timestamp used for seeded snapshots.
var SavedAt = time.Date(2024, 4, 30, 18, 0, 0, 0, time.UTC)

// SavedAtText is SavedAt as it appears in a stored snapshot.
const SavedAtText = "2024-04-30T18:00:00.000Z"

// Setter is the write half of a draft store.
type Setter interface {
	Set(key, value string) error
}

// SnapshotJSON encodes d as a stored snapshot saved at at.
func SnapshotJSON(t *testing.T, d journey.Draft, at time.Time) string {
	t.Helper()
	raw, err := journey.NewSnapshot(d, at).Encode()
	if err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	return raw
}

// SeedSnapshot stores a snapshot of d under key and returns the raw value.
func SeedSnapshot(t *testing.T, s Setter, key string, d journey.Draft, at time.Time) string {
	t.Helper()
	raw := SnapshotJSON(t, d, at)
	if err := s.Set(key, raw); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}
	return raw
}

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
