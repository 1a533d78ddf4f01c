package journey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() Draft {
	return Draft{
		Origin:          "Truro",
		OriginDeparture: "07:15",
		DepartureDays:   []Weekday{Monday, Wednesday},
		CampusStop:      "Ivany",
		CampusDeparture: "16:30",
		MeetStop:        "stop-12",
		MeetArrival:     ArrivalPlaceholder,
		StartDate:       "2024-05-01",
		EndDate:         "2024-06-30",
	}
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Message
}

func TestValidate_DefaultsNeverPass(t *testing.T) {
	for _, s := range Steps {
		err := Validate(DefaultDraft(), s)
		assert.Error(t, err, "step %d", s)
	}
}

func TestValidate_CompleteDraftPasses(t *testing.T) {
	d := completeDraft()
	for _, s := range Steps {
		assert.NoError(t, Validate(d, s), "step %d", s)
	}
	assert.NoError(t, ValidateAll(d))
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		step   Step
		mutate func(*Draft)
		want   string
		field  Field
	}{
		{"short origin", StepOrigin, func(d *Draft) { d.Origin = "T" }, "Enter your town (at least 2 characters).", FieldOrigin},
		{"missing departure", StepOrigin, func(d *Draft) { d.OriginDeparture = "" }, "Select a departure time.", FieldOriginDeparture},
		{"no days", StepOrigin, func(d *Draft) { d.DepartureDays = nil }, "Select at least one departure day.", ""},
		{"origin checked before time", StepOrigin, func(d *Draft) { d.Origin = ""; d.OriginDeparture = "" }, "Enter your town (at least 2 characters).", FieldOrigin},
		{"short campus", StepCampus, func(d *Draft) { d.CampusStop = "I" }, "Enter your campus (at least 2 characters).", FieldCampusStop},
		{"missing campus time", StepCampus, func(d *Draft) { d.CampusDeparture = "" }, "Select an arrival time.", FieldCampusDeparture},
		{"missing meet stop", StepMeet, func(d *Draft) { d.MeetStop = "" }, "Select a Meet Me location.", FieldMeetStop},
		{"missing start", StepDates, func(d *Draft) { d.StartDate = "" }, "Select a journey start date.", FieldStartDate},
		{"missing end", StepDates, func(d *Draft) { d.EndDate = "" }, "Select a journey end date.", FieldEndDate},
		{"start after end", StepDates, func(d *Draft) { d.StartDate = "2024-05-10"; d.EndDate = "2024-05-09" }, "Start date must be before (or equal to) end date.", FieldStartDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			tt.mutate(&d)

			err := Validate(d, tt.step)
			require.Error(t, err)
			assert.Equal(t, tt.want, validationMessage(t, err))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.step, verr.Step)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidate_EqualDatesPass(t *testing.T) {
	d := completeDraft()
	d.StartDate = "2024-05-10"
	d.EndDate = "2024-05-10"
	assert.NoError(t, Validate(d, StepDates))
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	d := completeDraft()
	d.Origin = "É"
	assert.Error(t, Validate(d, StepOrigin))

	d.Origin = "Éa"
	assert.NoError(t, Validate(d, StepOrigin))

	d.CampusStop = "日"
	assert.Error(t, Validate(d, StepCampus))

	d.CampusStop = "日本"
	assert.NoError(t, Validate(d, StepCampus))
}

func TestValidate_UnknownStep(t *testing.T) {
	err := Validate(completeDraft(), Step(7))
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Step: StepMeet, Message: "Select a Meet Me location."}
	assert.Equal(t, "step 3: Select a Meet Me location.", err.Error())
}
