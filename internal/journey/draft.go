package journey

import "slices"

// ArrivalPlaceholder is shown for the meeting stop arrival time until it has
// been calculated.
const ArrivalPlaceholder = "Calculated From API"

// Weekday identifies a departure day by its three-letter name.
type Weekday string

// Departure days in canonical order.
const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Weekdays lists every departure day in canonical order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday returns the Weekday named s.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range Weekdays {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// NormalizeDays drops unknown and duplicate days and returns the remainder in
// canonical order. The result is never nil.
func NormalizeDays(days []Weekday) []Weekday {
	out := make([]Weekday, 0, len(days))
	for _, d := range Weekdays {
		if slices.Contains(days, d) {
			out = append(out, d)
		}
	}
	return out
}

// Field names a single text value of the draft. The names double as the JSON
// keys of the stored draft.
type Field string

// Draft text fields.
const (
	FieldOrigin          Field = "origin_geoname"
	FieldOriginDeparture Field = "origin_departure"
	FieldCampusStop      Field = "nscc_stop"
	FieldCampusDeparture Field = "nscc_departure"
	FieldMeetStop        Field = "stop"
	FieldMeetArrival     Field = "stop_arrive_time"
	FieldStartDate       Field = "start_date"
	FieldEndDate         Field = "end_date"
)

// Draft holds the answers collected by the wizard.
type Draft struct {
	Origin          string    `json:"origin_geoname"`
	OriginDeparture string    `json:"origin_departure"`
	DepartureDays   []Weekday `json:"departure_days"`

	CampusStop      string `json:"nscc_stop"`
	CampusDeparture string `json:"nscc_departure"`

	MeetStop    string `json:"stop"`
	MeetArrival string `json:"stop_arrive_time"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DefaultDraft returns an empty draft.
func DefaultDraft() Draft {
	return Draft{
		DepartureDays: []Weekday{},
		MeetArrival:   ArrivalPlaceholder,
	}
}

// Clone returns a copy of d that shares no memory with it.
func (d Draft) Clone() Draft {
	c := d
	c.DepartureDays = slices.Clone(d.DepartureDays)
	if c.DepartureDays == nil {
		c.DepartureDays = []Weekday{}
	}
	return c
}

// Text returns the value of field f, or "" for an unknown field.
func (d *Draft) Text(f Field) string {
	if p := d.textPtr(f); p != nil {
		return *p
	}
	return ""
}

// SetText sets field f. Unknown fields are ignored.
func (d *Draft) SetText(f Field, v string) {
	if p := d.textPtr(f); p != nil {
		*p = v
	}
}

// HasDay reports whether day is selected.
func (d *Draft) HasDay(day Weekday) bool {
	return slices.Contains(d.DepartureDays, day)
}

func (d *Draft) textPtr(f Field) *string {
	switch f {
	case FieldOrigin:
		return &d.Origin
	case FieldOriginDeparture:
		return &d.OriginDeparture
	case FieldCampusStop:
		return &d.CampusStop
	case FieldCampusDeparture:
		return &d.CampusDeparture
	case FieldMeetStop:
		return &d.MeetStop
	case FieldMeetArrival:
		return &d.MeetArrival
	case FieldStartDate:
		return &d.StartDate
	case FieldEndDate:
		return &d.EndDate
	}
	return nil
}

var fieldLabels = map[Field]string{
	FieldOrigin:          "Home town",
	FieldOriginDeparture: "Departure time",
	FieldCampusStop:      "Campus",
	FieldCampusDeparture: "Campus arrival time",
	FieldMeetStop:        "Meet Me location",
	FieldMeetArrival:     "Arrival time",
	FieldStartDate:       "Journey start date",
	FieldEndDate:         "Journey end date",
}

// Label returns a human name for the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}
