package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/nsjourney/internal/journey"
	"github.com/imamik/nsjourney/internal/wizard"
)

var savedAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func sampleSnapshot() journey.Snapshot {
	d := journey.DefaultDraft()
	d.Origin = "Truro"
	d.OriginDeparture = "07:15"
	d.DepartureDays = []journey.Weekday{journey.Wednesday, journey.Monday}
	d.CampusStop = "Ivany"
	d.CampusDeparture = "16:30"
	return journey.NewSnapshot(d, savedAt)
}

func loaderOf(snap journey.Snapshot, err error) Loader {
	return func() (journey.Snapshot, error) { return snap, err }
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestStepNavigationWraps(t *testing.T) {
	m := NewStatusModel(wizard.DefaultKey, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Focus != journey.StepDates {
		t.Errorf("left from first step: got %v, want %v", m.Focus, journey.StepDates)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Focus != journey.StepOrigin {
		t.Errorf("right from last step: got %v, want %v", m.Focus, journey.StepOrigin)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if m.Focus != journey.StepCampus {
		t.Errorf("l: got %v, want %v", m.Focus, journey.StepCampus)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := NewStatusModel(wizard.DefaultKey, nil)
		next, cmd := m.Update(key)
		if !next.(Model).Done {
			t.Errorf("%s: expected Done", key)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command", key)
		}
	}
}

func TestReloadReadsSnapshot(t *testing.T) {
	m := NewStatusModel(wizard.DefaultKey, loaderOf(sampleSnapshot(), nil))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	msg, ok := cmd().(SnapshotMsg)
	if !ok {
		t.Fatalf("expected SnapshotMsg, got %T", cmd())
	}
	if !msg.Found || msg.Snapshot.Draft.Origin != "Truro" {
		t.Errorf("unexpected snapshot message: %+v", msg)
	}
}

func TestReadSnapshotMissing(t *testing.T) {
	msg := readSnapshot(loaderOf(journey.Snapshot{}, wizard.ErrNoSnapshot))
	if msg.Found || msg.Err != nil {
		t.Errorf("missing draft should be not found without error, got %+v", msg)
	}

	msg = readSnapshot(loaderOf(journey.Snapshot{}, journey.ErrMalformedSnapshot))
	if msg.Found || msg.Err != nil {
		t.Errorf("malformed draft should read as absent, got %+v", msg)
	}

	boom := errors.New("boom")
	msg = readSnapshot(loaderOf(journey.Snapshot{}, boom))
	if !errors.Is(msg.Err, boom) {
		t.Errorf("expected load error, got %v", msg.Err)
	}
}

func TestSnapshotMsgUpdatesModel(t *testing.T) {
	now := savedAt.Add(3 * time.Minute)
	m := NewStatusModel(wizard.DefaultKey, nil)
	m.clock = func() time.Time { return now }

	m = update(t, m, SnapshotMsg{Snapshot: sampleSnapshot(), Found: true})
	if !m.Loaded || !m.Found {
		t.Fatal("expected loaded snapshot")
	}
	if !m.Now.Equal(now) {
		t.Errorf("Now = %v, want %v", m.Now, now)
	}

	view := m.View()
	for _, want := range []string{
		"nsjourney: " + wizard.DefaultKey,
		"3 minutes ago",
		"Step 1 of 4",
		"Truro",
		"Mon, Wed",
		"Select a Meet Me location.",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewNoDraft(t *testing.T) {
	m := NewStatusModel(wizard.DefaultKey, nil)
	m = update(t, m, SnapshotMsg{})

	view := m.View()
	if !strings.Contains(view, "No saved draft found.") {
		t.Errorf("expected empty-state header, got:\n%s", view)
	}
	if strings.Contains(view, "Step 1 of 4") {
		t.Error("no steps should render without a draft")
	}
}

func TestViewLoadError(t *testing.T) {
	m := NewStatusModel(wizard.DefaultKey, nil)
	m = update(t, m, SnapshotMsg{Err: errors.New("database is locked")})

	if !strings.Contains(m.View(), "Error: database is locked") {
		t.Errorf("expected error header, got:\n%s", m.View())
	}
}

func TestRenderStatusOnceExpandsAllSteps(t *testing.T) {
	out, err := RenderStatusOnce(wizard.DefaultKey, loaderOf(sampleSnapshot(), nil), savedAt.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"2 hours ago",
		"Ivany",
		journey.ArrivalPlaceholder,
		"Journey start date",
		"draft incomplete",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "q: quit") {
		t.Error("static output should not show key hints")
	}
}

func TestRenderStatusOnceError(t *testing.T) {
	_, err := RenderStatusOnce(wizard.DefaultKey, loaderOf(journey.Snapshot{}, errors.New("disk")), savedAt)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSavedLineUnparseableTimestamp(t *testing.T) {
	m := Model{Snapshot: journey.Snapshot{SavedAt: "yesterday"}}
	if got := savedLine(m); got != "Saved yesterday" {
		t.Errorf("savedLine = %q", got)
	}
}
