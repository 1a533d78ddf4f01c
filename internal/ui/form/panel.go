package form

import (
	"slices"

	"github.com/imamik/nsjourney/internal/journey"
	"github.com/imamik/nsjourney/internal/wizard"
)

// Panel holds what the terminal currently displays. Field values are kept
// behind stable pointers so huh inputs can bind to them directly.
type Panel struct {
	text    map[journey.Field]*string
	days    []journey.Weekday
	visible journey.Step
	status  wizard.Message
	nav     wizard.Navigation
}

var _ wizard.Renderer = (*Panel)(nil)

// NewPanel returns a Panel with every field empty and no step visible.
func NewPanel() *Panel {
	p := &Panel{
		text: make(map[journey.Field]*string),
		days: []journey.Weekday{},
	}
	for _, s := range journey.Steps {
		for _, f := range s.Fields() {
			p.text[f] = new(string)
		}
	}
	return p
}

// Text implements wizard.Renderer.
func (p *Panel) Text(f journey.Field) string {
	if v, ok := p.text[f]; ok {
		return *v
	}
	return ""
}

// SetText implements wizard.Renderer.
func (p *Panel) SetText(f journey.Field, v string) {
	if ptr, ok := p.text[f]; ok {
		*ptr = v
	}
}

// Days implements wizard.Renderer.
func (p *Panel) Days() []journey.Weekday {
	return slices.Clone(p.days)
}

// SetDays implements wizard.Renderer.
func (p *Panel) SetDays(days []journey.Weekday) {
	p.days = slices.Clone(days)
	if p.days == nil {
		p.days = []journey.Weekday{}
	}
}

// ShowPanel implements wizard.Renderer. Only one panel is visible at a time;
// hiding a panel that is not visible does nothing.
func (p *Panel) ShowPanel(step journey.Step, visible bool) {
	switch {
	case visible:
		p.visible = step
	case p.visible == step:
		p.visible = 0
	}
}

// SetStatus implements wizard.Renderer.
func (p *Panel) SetStatus(msg wizard.Message) {
	p.status = msg
}

// SetNavigation implements wizard.Renderer.
func (p *Panel) SetNavigation(nav wizard.Navigation) {
	p.nav = nav
}

// Visible returns the visible step, or 0 when no panel is shown.
func (p *Panel) Visible() journey.Step { return p.visible }

// Status returns the displayed status message.
func (p *Panel) Status() wizard.Message { return p.status }

// Navigation returns the displayed navigation state.
func (p *Panel) Navigation() wizard.Navigation { return p.nav }

// bind returns the pointer huh inputs write f through.
func (p *Panel) bind(f journey.Field) *string {
	return p.text[f]
}
