package wizard

import (
	"errors"
	"slices"

	"github.com/imamik/nsjourney/internal/journey"
)

// fakeRenderer records everything the wizard asks it to display.
type fakeRenderer struct {
	text     map[journey.Field]string
	days     []journey.Weekday
	visible  map[journey.Step]bool
	status   Message
	nav      Navigation
	statuses []Message
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		text:    make(map[journey.Field]string),
		visible: make(map[journey.Step]bool),
	}
}

func (r *fakeRenderer) Text(f journey.Field) string       { return r.text[f] }
func (r *fakeRenderer) SetText(f journey.Field, v string) { r.text[f] = v }
func (r *fakeRenderer) Days() []journey.Weekday           { return slices.Clone(r.days) }
func (r *fakeRenderer) SetDays(d []journey.Weekday)       { r.days = slices.Clone(d) }
func (r *fakeRenderer) ShowPanel(s journey.Step, v bool)  { r.visible[s] = v }
func (r *fakeRenderer) SetNavigation(nav Navigation)      { r.nav = nav }

func (r *fakeRenderer) SetStatus(msg Message) {
	r.status = msg
	r.statuses = append(r.statuses, msg)
}

// visibleSteps returns the steps whose panel is shown.
func (r *fakeRenderer) visibleSteps() []journey.Step {
	var out []journey.Step
	for _, s := range journey.Steps {
		if r.visible[s] {
			out = append(out, s)
		}
	}
	return out
}

// fill types valid answers for step into the renderer.
func (r *fakeRenderer) fill(step journey.Step) {
	switch step {
	case journey.StepOrigin:
		r.text[journey.FieldOrigin] = "  Truro "
		r.text[journey.FieldOriginDeparture] = "07:15"
		r.days = []journey.Weekday{journey.Wednesday, journey.Monday}
	case journey.StepCampus:
		r.text[journey.FieldCampusStop] = "Ivany"
		r.text[journey.FieldCampusDeparture] = "16:30"
	case journey.StepMeet:
		r.text[journey.FieldMeetStop] = "stop-12"
	case journey.StepDates:
		r.text[journey.FieldStartDate] = "2024-05-01"
		r.text[journey.FieldEndDate] = "2024-06-30"
	}
}

// countingStore wraps a map and counts writes; it can be told to fail.
type countingStore struct {
	data       map[string]string
	sets       int
	removes    int
	failGet    error
	failSet    error
	failRemove error
}

func newCountingStore() *countingStore {
	return &countingStore{data: make(map[string]string)}
}

func (s *countingStore) Get(key string) (string, bool, error) {
	if s.failGet != nil {
		return "", false, s.failGet
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *countingStore) Set(key, value string) error {
	if s.failSet != nil {
		return s.failSet
	}
	s.sets++
	s.data[key] = value
	return nil
}

func (s *countingStore) Remove(key string) error {
	if s.failRemove != nil {
		return s.failRemove
	}
	s.removes++
	delete(s.data, key)
	return nil
}

var errDisk = errors.New("disk on fire")
