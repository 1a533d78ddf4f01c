package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/nsjourney/internal/journey"
	"github.com/imamik/nsjourney/internal/wizard"
)

// Loader reads the saved snapshot. It returns wizard.ErrNoSnapshot when
// nothing has been saved yet. Malformed snapshots are shown as absent.
type Loader func() (journey.Snapshot, error)

// Model is the Bubble Tea model for the draft status dashboard.
type Model struct {
	// Draft info
	Key      string
	Snapshot journey.Snapshot
	Found    bool
	Loaded   bool

	// Focused step, shown with its field values expanded.
	Focus journey.Step

	// Reference time for relative timestamps.
	Now time.Time

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool

	// Static renders without key hints for non-interactive output.
	Static bool

	load  Loader
	clock func() time.Time
}

// NewStatusModel creates a dashboard model reading the draft stored under key.
func NewStatusModel(key string, load Loader) Model {
	return Model{
		Key:   key,
		Focus: journey.FirstStep,
		Now:   time.Now(),
		load:  load,
		clock: time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.load), tickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Done = true
			return m, tea.Quit
		case "right", "l", "tab":
			m.Focus = nextStep(m.Focus)
		case "left", "h", "shift+tab":
			m.Focus = prevStep(m.Focus)
		case "r":
			return m, loadCmd(m.load)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case SnapshotMsg:
		m.Loaded = true
		m.Err = msg.Err
		m.Found = msg.Found
		m.Snapshot = msg.Snapshot
		m.Now = m.now()

	case TickMsg:
		m.Now = m.now()
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) now() time.Time {
	if m.clock == nil {
		return time.Now()
	}
	return m.clock()
}

func nextStep(s journey.Step) journey.Step {
	if s >= journey.LastStep {
		return journey.FirstStep
	}
	return s + 1
}

func prevStep(s journey.Step) journey.Step {
	if s <= journey.FirstStep {
		return journey.LastStep
	}
	return s - 1
}

func loadCmd(load Loader) tea.Cmd {
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		return readSnapshot(load)
	}
}

func readSnapshot(load Loader) SnapshotMsg {
	snap, err := load()
	switch {
	case errors.Is(err, wizard.ErrNoSnapshot), errors.Is(err, journey.ErrMalformedSnapshot):
		return SnapshotMsg{}
	case err != nil:
		return SnapshotMsg{Err: err}
	}
	return SnapshotMsg{Snapshot: snap, Found: true}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
