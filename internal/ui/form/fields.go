package form

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/nsjourney/internal/journey"
)

// fieldSpec describes how one draft field is presented. The title is the
// field label.
type fieldSpec struct {
	Description string
	Placeholder string
	ReadOnly    bool
}

var fieldSpecs = map[journey.Field]fieldSpec{
	journey.FieldOrigin: {
		Description: "Where your journey starts (at least 2 characters)",
		Placeholder: "Truro",
	},
	journey.FieldOriginDeparture: {
		Description: "When you leave home",
		Placeholder: "07:15",
	},
	journey.FieldCampusStop: {
		Description: "The campus you travel to (at least 2 characters)",
		Placeholder: "Ivany",
	},
	journey.FieldCampusDeparture: {
		Description: "When you need to be on campus",
		Placeholder: "08:30",
	},
	journey.FieldMeetStop: {
		Description: "Stop identifier where you join the shuttle",
		Placeholder: "stop-12",
	},
	journey.FieldMeetArrival: {ReadOnly: true},
	journey.FieldStartDate: {
		Description: "YYYY-MM-DD",
		Placeholder: "2024-05-01",
	},
	journey.FieldEndDate: {
		Description: "YYYY-MM-DD, on or after the start date",
		Placeholder: "2024-06-30",
	},
}

var stepDescriptions = map[journey.Step]string{
	journey.StepOrigin: "Where and when you leave home",
	journey.StepCampus: "Your campus and arrival time",
	journey.StepMeet:   "Where you meet the shuttle",
	journey.StepDates:  "How long the journey plan runs",
}

// dayOptions lists the departure days for the multi-select.
func dayOptions() []huh.Option[journey.Weekday] {
	opts := make([]huh.Option[journey.Weekday], len(journey.Weekdays))
	for i, d := range journey.Weekdays {
		opts[i] = huh.NewOption(string(d), d)
	}
	return opts
}

// stepGroup builds the huh group for the visible step, bound to p.
func stepGroup(p *Panel, step journey.Step) *huh.Group {
	var fields []huh.Field

	for _, f := range step.Fields() {
		spec := fieldSpecs[f]
		if spec.ReadOnly {
			fields = append(fields, huh.NewNote().
				Title(f.Label()).
				Description(p.Text(f)))
			continue
		}
		fields = append(fields, huh.NewInput().
			Title(f.Label()).
			Description(spec.Description).
			Placeholder(spec.Placeholder).
			Value(p.bind(f)))
	}

	if step.HasDays() {
		fields = append(fields, huh.NewMultiSelect[journey.Weekday]().
			Title("Departure days").
			Description("Select every day you travel").
			Options(dayOptions()...).
			Value(&p.days))
	}

	return huh.NewGroup(fields...).
		Title(step.String() + ": " + step.Title()).
		Description(stepDescriptions[step])
}
