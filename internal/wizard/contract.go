package wizard

import "github.com/imamik/nsjourney/internal/journey"

// DefaultKey is the store key the draft snapshot is kept under.
const DefaultKey = "ns_journey_draft_v1"

// Forward control labels.
const (
	LabelNext = "Next"
	LabelSave = "Save Draft"
)

// Severity classifies a status message.
type Severity int

const (
	// SeverityInfo is a neutral progress message.
	SeverityInfo Severity = iota
	// SeverityError reports something the user has to fix.
	SeverityError
	// SeveritySuccess confirms a save or load.
	SeveritySuccess
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeveritySuccess:
		return "success"
	default:
		return "info"
	}
}

// Message is the status line shown under the active panel.
type Message struct {
	Text     string
	Severity Severity
}

// Navigation describes the state of the Back and forward controls.
type Navigation struct {
	BackEnabled    bool
	ForwardEnabled bool
	ForwardLabel   string
}

// Renderer is the UI the wizard drives. It holds the values currently
// displayed for every field, whichever panel is visible.
type Renderer interface {
	// Text returns the displayed value of f.
	Text(f journey.Field) string
	// SetText replaces the displayed value of f.
	SetText(f journey.Field, v string)
	// Days returns the departure days currently checked.
	Days() []journey.Weekday
	// SetDays checks exactly the given days.
	SetDays(days []journey.Weekday)
	// ShowPanel shows or hides the panel of step.
	ShowPanel(step journey.Step, visible bool)
	// SetStatus replaces the status message.
	SetStatus(msg Message)
	// SetNavigation updates the navigation controls.
	SetNavigation(nav Navigation)
}

// Store is string-keyed durable storage.
type Store interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
