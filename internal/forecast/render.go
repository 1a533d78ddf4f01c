package forecast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MaxCards is the largest number of forecast cards rendered by default.
const MaxCards = 12

const (
	msgNoCurrent = "No forecast entries returned."
	msgNoCards   = "No forecast entries found."
	unknownValue = "?"
	unknownCity  = "Unknown city"
	unknownDesc  = "n/a"
	timeLayout   = "Mon 2 Jan 15:04"
)

var (
	colorBlue = lipgloss.Color("#3b82f6")
	colorDim  = lipgloss.Color("#6b7280")

	placeStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorDim)
	tempStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Sanitize strips ANSI escape sequences and control characters from text
// received from the API.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Location returns the city's fixed UTC offset.
func (c City) Location() *time.Location {
	return time.FixedZone(Sanitize(c.Name), c.Timezone)
}

// LoadedMessage is the status line printed after a successful fetch.
func LoadedMessage(q Query) string {
	return fmt.Sprintf("Loaded forecast for %s.", q.Normalize().Label())
}

// RenderCurrent renders the first forecast entry as the current conditions.
// Times are shown in loc.
func RenderCurrent(resp *Response, units string, loc *time.Location) string {
	if resp == nil || len(resp.List) == 0 {
		return emptyStyle.Render(msgNoCurrent)
	}
	first := resp.List[0]

	city := Sanitize(resp.City.Name)
	if city == "" {
		city = unknownCity
	}
	place := TitleCase(city)
	if country := Sanitize(resp.City.Country); country != "" {
		place += " (" + country + ")"
	}

	var b strings.Builder
	b.WriteString(placeStyle.Render(place))
	b.WriteString("\n")
	writeRow(&b, "As of", formatTime(first.Dt, loc))
	writeRow(&b, "Temp", tempStyle.Render(formatTemp(first.Main.Temp, units)))
	writeRow(&b, "Feels like", formatTemp(first.Main.FeelsLike, units))
	writeRow(&b, "Conditions", describe(first))
	writeRow(&b, "Wind", formatWind(first.Wind.Speed, units))
	return b.String()
}

// RenderCards renders up to limit forecast entries as cards laid out in rows
// of four. A limit below 1 means MaxCards.
func RenderCards(resp *Response, limit int, units string, loc *time.Location) string {
	if resp == nil || len(resp.List) == 0 {
		return emptyStyle.Render(msgNoCards)
	}
	if limit < 1 {
		limit = MaxCards
	}
	entries := resp.List
	if len(entries) > limit {
		entries = entries[:limit]
	}

	const perRow = 4
	var rows []string
	for i := 0; i < len(entries); i += perRow {
		end := min(i+perRow, len(entries))
		cards := make([]string, 0, perRow)
		for _, e := range entries[i:end] {
			cards = append(cards, renderCard(e, units, loc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(e Entry, units string, loc *time.Location) string {
	lines := []string{
		labelStyle.Render(formatTime(e.Dt, loc)),
		tempStyle.Render(formatTemp(e.Main.Temp, units)),
		describe(e),
		labelStyle.Render("Humidity: " + formatNumber(e.Main.Humidity) + "%"),
	}
	if icon := Sanitize(e.Icon()); icon != "" {
		lines = append(lines, labelStyle.Render("Icon: "+icon))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-11s", label+":")), value)
}

func describe(e Entry) string {
	desc := Sanitize(e.Description())
	if desc == "" {
		return unknownDesc
	}
	return TitleCase(desc)
}

func formatTime(dt int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(dt, 0).In(loc).Format(timeLayout)
}

func formatNumber(v *float64) string {
	if v == nil {
		return unknownValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatTemp(v *float64, units string) string {
	return formatNumber(v) + tempSuffix(units)
}

func formatWind(v *float64, units string) string {
	if v == nil {
		return unknownValue
	}
	if units == "imperial" {
		return formatNumber(v) + " mph"
	}
	return formatNumber(v) + " m/s"
}

func tempSuffix(units string) string {
	switch units {
	case "imperial":
		return "°F"
	case "standard":
		return " K"
	default:
		return "°C"
	}
}
