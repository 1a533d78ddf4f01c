package journey

import (
	"fmt"
	"unicode/utf8"
)

// minPlaceLength is the shortest accepted town or campus name.
const minPlaceLength = 2

// ValidationError reports the first rule a step failed.
type ValidationError struct {
	Step    Step
	Field   Field
	Message string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s", int(e.Step), e.Message)
}

// Validate checks the fields of step against d and returns the first failing
// rule, or nil.
func Validate(d Draft, step Step) error {
	fail := func(f Field, msg string) error {
		return &ValidationError{Step: step, Field: f, Message: msg}
	}

	switch step {
	case StepOrigin:
		if utf8.RuneCountInString(d.Origin) < minPlaceLength {
			return fail(FieldOrigin, "Enter your town (at least 2 characters).")
		}
		if d.OriginDeparture == "" {
			return fail(FieldOriginDeparture, "Select a departure time.")
		}
		if len(d.DepartureDays) == 0 {
			return fail("", "Select at least one departure day.")
		}

	case StepCampus:
		if utf8.RuneCountInString(d.CampusStop) < minPlaceLength {
			return fail(FieldCampusStop, "Enter your campus (at least 2 characters).")
		}
		if d.CampusDeparture == "" {
			return fail(FieldCampusDeparture, "Select an arrival time.")
		}

	case StepMeet:
		if d.MeetStop == "" {
			return fail(FieldMeetStop, "Select a Meet Me location.")
		}

	case StepDates:
		if d.StartDate == "" {
			return fail(FieldStartDate, "Select a journey start date.")
		}
		if d.EndDate == "" {
			return fail(FieldEndDate, "Select a journey end date.")
		}
		// ISO dates order lexicographically.
		if d.StartDate > d.EndDate {
			return fail(FieldStartDate, "Start date must be before (or equal to) end date.")
		}

	default:
		return fmt.Errorf("unknown step %d", int(step))
	}

	return nil
}

// ValidateAll validates every step in order and returns the first failure.
func ValidateAll(d Draft) error {
	for _, s := range Steps {
		if err := Validate(d, s); err != nil {
			return err
		}
	}
	return nil
}
