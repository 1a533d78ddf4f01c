package journey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimestampFormat is the layout of Snapshot.SavedAt: ISO-8601 in UTC with
// millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// ErrMalformedSnapshot is returned when stored data cannot be read as a
// snapshot.
var ErrMalformedSnapshot = errors.New("malformed draft snapshot")

// Snapshot is a draft together with the time it was saved.
type Snapshot struct {
	Draft   Draft  `json:"draft"`
	SavedAt string `json:"savedAt"`
}

// NewSnapshot stamps d with at.
func NewSnapshot(d Draft, at time.Time) Snapshot {
	return Snapshot{
		Draft:   d.Clone(),
		SavedAt: at.UTC().Format(TimestampFormat),
	}
}

// SavedTime parses SavedAt.
func (s Snapshot) SavedTime() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s.SavedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Encode serializes the snapshot for storage.
func (s Snapshot) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(b), nil
}

// DecodeSnapshot parses a stored snapshot. Missing draft fields take their
// default values and unknown weekdays are dropped. Input that is not JSON,
// lacks a draft object, or has mistyped fields yields ErrMalformedSnapshot.
func DecodeSnapshot(raw string) (Snapshot, error) {
	var wire struct {
		Draft   json.RawMessage `json:"draft"`
		SavedAt string          `json:"savedAt"`
	}
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	body := bytes.TrimSpace(wire.Draft)
	if len(body) == 0 || body[0] != '{' {
		return Snapshot{}, fmt.Errorf("%w: missing draft object", ErrMalformedSnapshot)
	}

	d := DefaultDraft()
	if err := json.Unmarshal(body, &d); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	d.DepartureDays = NormalizeDays(d.DepartureDays)
	if d.MeetArrival == "" {
		d.MeetArrival = ArrivalPlaceholder
	}

	return Snapshot{Draft: d, SavedAt: wire.SavedAt}, nil
}
