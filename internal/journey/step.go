package journey

import "fmt"

// Step is a 1-based panel index.
type Step int

// Wizard steps in order.
const (
	StepOrigin Step = iota + 1
	StepCampus
	StepMeet
	StepDates
)

// StepCount is the number of wizard steps.
const StepCount = 4

// FirstStep and LastStep bound the linear step sequence.
const (
	FirstStep = StepOrigin
	LastStep  = StepDates
)

// Steps lists every step in order.
var Steps = []Step{StepOrigin, StepCampus, StepMeet, StepDates}

var stepTitles = map[Step]string{
	StepOrigin: "Origin",
	StepCampus: "Campus",
	StepMeet:   "Meet Me",
	StepDates:  "Journey Dates",
}

// stepFields maps each step to the text fields it owns. The departure days
// belong to StepOrigin as well.
var stepFields = map[Step][]Field{
	StepOrigin: {FieldOrigin, FieldOriginDeparture},
	StepCampus: {FieldCampusStop, FieldCampusDeparture},
	StepMeet:   {FieldMeetStop, FieldMeetArrival},
	StepDates:  {FieldStartDate, FieldEndDate},
}

// Valid reports whether s is within FirstStep..LastStep.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title returns a short human name for the step.
func (s Step) Title() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Step %d", int(s))
}

// Fields returns the text fields owned by the step.
func (s Step) Fields() []Field {
	return stepFields[s]
}

// HasDays reports whether the step collects departure days.
func (s Step) HasDays() bool {
	return s == StepOrigin
}

// String implements fmt.Stringer.
func (s Step) String() string {
	return fmt.Sprintf("Step %d of %d", int(s), StepCount)
}
