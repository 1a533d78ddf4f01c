package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/nsjourney/internal/journey"
	"github.com/imamik/nsjourney/internal/metrics"
)

// Status messages.
const (
	msgSaved   = "Draft saved locally. Restarted at Step 1."
	msgCleared = "Draft cleared."
	msgNoDraft = "No saved draft found. Start Step 1."
)

// trimmedFields are captured without surrounding whitespace.
var trimmedFields = map[journey.Field]bool{
	journey.FieldOrigin:     true,
	journey.FieldCampusStop: true,
}

// Wizard is the draft state machine. Create one with New.
type Wizard struct {
	renderer Renderer
	store    Store
	key      string
	now      func() time.Time
	log      logr.Logger

	draft  journey.Draft
	step   journey.Step
	status Message
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithKey overrides the store key the snapshot is kept under.
func WithKey(key string) Option {
	return func(w *Wizard) {
		if key != "" {
			w.key = key
		}
	}
}

// WithClock sets the time source used to stamp saved snapshots.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(w *Wizard) {
		w.log = log
	}
}

// New returns a wizard at step 1 with a default draft. Nothing is rendered
// until Bootstrap is called.
func New(r Renderer, s Store, opts ...Option) *Wizard {
	w := &Wizard{
		renderer: r,
		store:    s,
		key:      DefaultKey,
		now:      time.Now,
		log:      logr.Discard(),
		draft:    journey.DefaultDraft(),
		step:     journey.FirstStep,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() journey.Draft {
	return w.draft.Clone()
}

// Step returns the active step.
func (w *Wizard) Step() journey.Step {
	return w.step
}

// Status returns the current status message.
func (w *Wizard) Status() Message {
	return w.status
}

// Key returns the store key of the draft snapshot.
func (w *Wizard) Key() string {
	return w.key
}

// LoadStep writes the draft values of step n into the renderer.
func (w *Wizard) LoadStep(n journey.Step) {
	for _, f := range n.Fields() {
		v := w.draft.Text(f)
		if f == journey.FieldMeetArrival && v == "" {
			v = journey.ArrivalPlaceholder
		}
		w.renderer.SetText(f, v)
	}
	if n.HasDays() {
		w.renderer.SetDays(journey.NormalizeDays(w.draft.DepartureDays))
	}
}

// CaptureStep reads the renderer values of step n into the draft. It does
// not validate.
func (w *Wizard) CaptureStep(n journey.Step) {
	for _, f := range n.Fields() {
		v := w.renderer.Text(f)
		if trimmedFields[f] {
			v = strings.TrimSpace(v)
		}
		if f == journey.FieldMeetArrival && v == "" {
			v = journey.ArrivalPlaceholder
		}
		w.draft.SetText(f, v)
	}
	if n.HasDays() {
		w.draft.DepartureDays = journey.NormalizeDays(w.renderer.Days())
	}
}

// ValidateStep checks step n against the current draft. It returns a
// *journey.ValidationError for the first failing rule, or nil.
func (w *Wizard) ValidateStep(n journey.Step) error {
	return journey.Validate(w.draft, n)
}

// Advance captures and validates the active step. An invalid step stays
// active with an error message. A valid step moves forward; on the last step
// the draft is saved and the wizard restarts at step 1. Only storage failures
// are returned.
func (w *Wizard) Advance() error {
	step := w.step
	w.CaptureStep(step)

	if err := w.ValidateStep(step); err != nil {
		msg := err.Error()
		var verr *journey.ValidationError
		if errors.As(err, &verr) {
			msg = verr.Message
		}
		w.setStatus(msg, SeverityError)
		w.log.V(1).Info("step validation failed", "step", int(step), "reason", msg)
		metrics.RecordValidationFailure(int(step))
		metrics.RecordTransition("advance", "invalid")
		return nil
	}

	if step < journey.LastStep {
		w.render(step + 1)
		metrics.RecordTransition("advance", "ok")
		return nil
	}

	if err := w.save(); err != nil {
		w.setStatus(fmt.Sprintf("Could not save draft: %v", err), SeverityError)
		w.log.Error(err, "failed to save draft", "key", w.key)
		metrics.RecordTransition("save", "error")
		return err
	}

	w.render(journey.FirstStep)
	w.setStatus(msgSaved, SeveritySuccess)
	metrics.RecordTransition("save", "ok")
	return nil
}

// Retreat moves back one step. It does nothing on step 1.
func (w *Wizard) Retreat() {
	if w.step <= journey.FirstStep {
		return
	}
	w.render(w.step - 1)
	metrics.RecordTransition("retreat", "ok")
}

// ResetAll removes the stored snapshot and restarts with a default draft.
// If the store cannot remove the snapshot the wizard state is left unchanged.
func (w *Wizard) ResetAll() error {
	if err := w.store.Remove(w.key); err != nil {
		err = fmt.Errorf("failed to remove draft: %w", err)
		w.setStatus(fmt.Sprintf("Could not clear draft: %v", err), SeverityError)
		w.log.Error(err, "reset failed", "key", w.key)
		metrics.RecordTransition("reset", "error")
		return err
	}

	w.draft = journey.DefaultDraft()
	w.loadAll()
	w.render(journey.FirstStep)
	w.setStatus(msgCleared, SeverityInfo)
	w.log.Info("draft cleared", "key", w.key)
	metrics.RecordTransition("reset", "ok")
	return nil
}

// Bootstrap adopts the stored snapshot, if any, and renders step 1. Missing
// or unreadable data falls back to a default draft. It reports whether a
// snapshot was loaded.
func (w *Wizard) Bootstrap() bool {
	snap, err := LoadSnapshot(w.store, w.key)
	if err != nil {
		w.recordBootstrapMiss(err)
		w.draft = journey.DefaultDraft()
		w.loadAll()
		w.render(journey.FirstStep)
		w.setStatus(msgNoDraft, SeverityInfo)
		return false
	}

	w.draft = snap.Draft
	w.loadAll()
	w.render(journey.FirstStep)
	w.setStatus(fmt.Sprintf("Draft loaded (saved at %s).", snap.SavedAt), SeveritySuccess)
	w.log.Info("draft loaded", "key", w.key, "savedAt", snap.SavedAt)
	metrics.RecordBootstrap("loaded")
	return true
}

func (w *Wizard) recordBootstrapMiss(err error) {
	switch {
	case errors.Is(err, ErrNoSnapshot):
		metrics.RecordBootstrap("empty")
	case errors.Is(err, journey.ErrMalformedSnapshot):
		w.log.V(1).Info("ignoring malformed draft", "key", w.key, "reason", err.Error())
		metrics.RecordBootstrap("malformed")
	default:
		w.log.V(1).Info("ignoring unreadable draft", "key", w.key, "reason", err.Error())
		metrics.RecordBootstrap("error")
	}
}

func (w *Wizard) save() error {
	raw, err := journey.NewSnapshot(w.draft, w.now()).Encode()
	if err != nil {
		return err
	}
	if err := w.store.Set(w.key, raw); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	w.log.Info("draft saved", "key", w.key)
	return nil
}

func (w *Wizard) loadAll() {
	for _, s := range journey.Steps {
		w.LoadStep(s)
	}
}

func (w *Wizard) render(n journey.Step) {
	w.step = n
	for _, s := range journey.Steps {
		w.renderer.ShowPanel(s, s == n)
	}

	label := LabelNext
	if n == journey.LastStep {
		label = LabelSave
	}
	w.renderer.SetNavigation(Navigation{
		BackEnabled:    n > journey.FirstStep,
		ForwardEnabled: true,
		ForwardLabel:   label,
	})

	w.setStatus(fmt.Sprintf("You are on %s.", n), SeverityInfo)
}

func (w *Wizard) setStatus(text string, sev Severity) {
	w.status = Message{Text: text, Severity: sev}
	w.renderer.SetStatus(w.status)
}
