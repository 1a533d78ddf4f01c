package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/nsjourney/internal/wizard"
)

var (
	// Colors
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")

	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			MarginTop(1)

	infoStyle    = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
)

// RenderStatus renders the step header and the status message of p.
func RenderStatus(p *Panel) string {
	var b strings.Builder

	if step := p.Visible(); step.Valid() {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", step, step.Title())))
		b.WriteString("\n")
	}

	msg := p.Status()
	if msg.Text != "" {
		b.WriteString(statusStyle(msg.Severity).Render(msg.Text))
	}

	return b.String()
}

func statusStyle(sev wizard.Severity) lipgloss.Style {
	switch sev {
	case wizard.SeverityError:
		return errorStyle
	case wizard.SeveritySuccess:
		return successStyle
	default:
		return infoStyle
	}
}
