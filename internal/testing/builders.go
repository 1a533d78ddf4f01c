package testing

import (
	"slices"

	"github.com/imamik/nsjourney/internal/journey"
)

// DraftBuilder provides a fluent interface for constructing test drafts.
// Each method returns a new builder (immutable) for chaining.
type DraftBuilder struct {
	d journey.Draft
}

// NewDraftBuilder creates a builder holding a draft that passes every step.
func NewDraftBuilder() *DraftBuilder {
	d := journey.DefaultDraft()
	d.Origin = "Truro"
	d.OriginDeparture = "07:15"
	d.DepartureDays = []journey.Weekday{journey.Monday, journey.Wednesday}
	d.CampusStop = "Ivany"
	d.CampusDeparture = "16:30"
	d.MeetStop = "stop-12"
	d.StartDate = "2024-05-01"
	d.EndDate = "2024-06-30"
	return &DraftBuilder{d: d}
}

// NewEmptyDraftBuilder creates a builder holding the default draft.
func NewEmptyDraftBuilder() *DraftBuilder {
	return &DraftBuilder{d: journey.DefaultDraft()}
}

// WithOrigin sets the home town.
func (b *DraftBuilder) WithOrigin(origin string) *DraftBuilder {
	newBuilder := b.clone()
	newBuilder.d.Origin = origin
	return newBuilder
}

// WithDeparture sets the departure time and days.
func (b *DraftBuilder) WithDeparture(at string, days ...journey.Weekday) *DraftBuilder {
	newBuilder := b.clone()
	newBuilder.d.OriginDeparture = at
	newBuilder.d.DepartureDays = journey.NormalizeDays(days)
	return newBuilder
}

// WithCampus sets the campus and its arrival time.
func (b *DraftBuilder) WithCampus(stop, at string) *DraftBuilder {
	newBuilder := b.clone()
	newBuilder.d.CampusStop = stop
	newBuilder.d.CampusDeparture = at
	return newBuilder
}

// WithMeetStop sets the Meet Me location.
func (b *DraftBuilder) WithMeetStop(stop string) *DraftBuilder {
	newBuilder := b.clone()
	newBuilder.d.MeetStop = stop
	return newBuilder
}

// WithDates sets the journey start and end dates.
func (b *DraftBuilder) WithDates(start, end string) *DraftBuilder {
	newBuilder := b.clone()
	newBuilder.d.StartDate = start
	newBuilder.d.EndDate = end
	return newBuilder
}

// Without clears the given text fields.
func (b *DraftBuilder) Without(fields ...journey.Field) *DraftBuilder {
	newBuilder := b.clone()
	for _, f := range fields {
		newBuilder.d.SetText(f, "")
	}
	return newBuilder
}

// Build returns the constructed draft.
func (b *DraftBuilder) Build() journey.Draft {
	return b.d.Clone()
}

// clone creates a deep copy of the builder.
func (b *DraftBuilder) clone() *DraftBuilder {
	d := b.d
	d.DepartureDays = slices.Clone(b.d.DepartureDays)
	return &DraftBuilder{d: d}
}
