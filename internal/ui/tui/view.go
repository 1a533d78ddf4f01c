package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/imamik/nsjourney/internal/journey"
)

const daysLabel = "Departure days"

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	if m.Loaded && m.Found && m.Err == nil {
		renderSteps(&b, m)
	}

	if !m.Static {
		renderFooter(&b, m)
	}

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render(fmt.Sprintf("nsjourney: %s", m.Key)))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case !m.Loaded:
		status += dimStyle.Render("Loading...")
	case !m.Found:
		status += warningStyle.Render("No saved draft found.")
	default:
		status += readyStyle.Render(savedLine(m))
	}
	b.WriteString(status)
	b.WriteString("\n")

	if m.Loaded && m.Found && m.Err == nil {
		complete := journey.ValidateAll(m.Snapshot.Draft) == nil
		icon, style := statusIcon(complete)
		label := "incomplete"
		if complete {
			label = "complete"
		}
		fmt.Fprintf(b, "%s %s\n", style(icon), subtitleStyle.Render("draft "+label))
	}
}

func savedLine(m Model) string {
	at, ok := m.Snapshot.SavedTime()
	if !ok {
		if m.Snapshot.SavedAt == "" {
			return "Saved (time unknown)"
		}
		return fmt.Sprintf("Saved %s", m.Snapshot.SavedAt)
	}
	return fmt.Sprintf("Saved %s (%s)", humanize.RelTime(at, m.Now, "ago", "from now"), m.Snapshot.SavedAt)
}

func renderSteps(b *strings.Builder, m Model) {
	d := m.Snapshot.Draft
	for _, step := range journey.Steps {
		renderStep(b, m, step, &d)
	}
}

func renderStep(b *strings.Builder, m Model, step journey.Step, d *journey.Draft) {
	focused := step == m.Focus || m.Static

	marker := " "
	title := sf(sectionStyle)
	if step == m.Focus && !m.Static {
		marker = focusMark
		title = sf(sectionStyle.Foreground(colorWhite))
	}
	b.WriteString(title(fmt.Sprintf("%s %s  %s", marker, step, step.Title())))
	b.WriteString("\n")

	err := journey.Validate(*d, step)
	icon, style := statusIcon(err == nil)
	msg := "valid"
	var verr *journey.ValidationError
	if errors.As(err, &verr) {
		msg = verr.Message
	} else if err != nil {
		msg = err.Error()
	}
	fmt.Fprintf(b, "    %s %s\n", style(icon), style(msg))

	if !focused {
		return
	}
	for _, f := range step.Fields() {
		renderField(b, f.Label(), d.Text(f))
	}
	if step.HasDays() {
		renderField(b, daysLabel, formatDays(d.DepartureDays))
	}
}

func renderField(b *strings.Builder, label, value string) {
	if value == "" {
		fmt.Fprintf(b, "      %-22s %s\n", label, dimStyle.Render(pending))
		return
	}
	fmt.Fprintf(b, "      %-22s %s\n", label, activeStyle.Render(value))
}

func formatDays(days []journey.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range journey.NormalizeDays(days) {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, ", ")
}

func renderFooter(b *strings.Builder, m Model) {
	parts := []string{"left/right: step", "r: reload", "q: quit"}
	if m.Loaded && m.Found {
		parts = append([]string{fmt.Sprintf("viewing %s", m.Focus)}, parts...)
	}
	b.WriteString(footerStyle.Render("  " + strings.Join(parts, "  |  ")))
	b.WriteString("\n")
}

func statusIcon(ok bool) (string, styleFunc) {
	if ok {
		return checkMark, sf(readyStyle)
	}
	return crossMark, sf(failedStyle)
}
