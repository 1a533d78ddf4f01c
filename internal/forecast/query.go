package forecast

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input errors. InputMessage turns them into the prompt shown to the user.
var (
	ErrCityTooShort  = errors.New("city name must be at least 2 characters")
	ErrMissingAPIKey = errors.New("missing OpenWeather API key")
)

// InputMessage returns the user prompt for an input error and reports
// whether err was one.
func InputMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrCityTooShort):
		return "Please enter a city name (at least 2 characters).", true
	case errors.Is(err, ErrMissingAPIKey):
		return "Please paste your OpenWeather API key.", true
	default:
		return "", false
	}
}

const minCityLength = 2

// Query identifies the place to fetch a forecast for.
type Query struct {
	City    string
	Country string
}

// Normalize trims both fields, title-cases the city and upper-cases the
// country code.
func (q Query) Normalize() Query {
	return Query{
		City:    TitleCase(strings.TrimSpace(q.City)),
		Country: strings.ToUpper(strings.TrimSpace(q.Country)),
	}
}

// Validate checks the city length after trimming.
func (q Query) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(q.City)) < minCityLength {
		return ErrCityTooShort
	}
	return nil
}

// String returns the q parameter value, "City" or "City,CC".
func (q Query) String() string {
	if q.Country == "" {
		return q.City
	}
	return q.City + "," + q.Country
}

// Label returns the place as shown to the user, "City" or "City, CC".
func (q Query) Label() string {
	if q.Country == "" {
		return q.City
	}
	return q.City + ", " + q.Country
}

// TitleCase upper-cases the first letter of every space-separated word and
// lower-cases the rest. Runs of spaces collapse to one.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		out = append(out, string(unicode.ToUpper(r))+strings.ToLower(w[size:]))
	}
	return strings.Join(out, " ")
}
