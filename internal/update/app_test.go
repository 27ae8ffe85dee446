package update

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/angrytodo/internal/engine"
	"github.com/sandeepkv93/angrytodo/internal/storage"
)

type firstPick struct{}

func (firstPick) IntN(int) int { return 0 }

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (Model, *stepClock) {
	t.Helper()
	clock := &stepClock{now: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)}
	eng := engine.New(context.Background(), storage.NewMemoryStore(),
		engine.WithClock(clock.Now),
		engine.WithRandomSource(firstPick{}),
	)
	return NewModel(context.Background(), eng), clock
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func addTask(t *testing.T, m Model, text string) Model {
	t.Helper()
	return press(t, m, runes("a"), runes(text), enterKey, escKey)
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Pane != PaneTasks {
		t.Fatalf("expected tasks pane, got %q", m.Pane)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if len(m.State.Tasks) != 0 || m.State.Mood != 0 {
		t.Fatalf("expected empty session, got %+v", m.State)
	}
}

func TestCaptureModeAddsTasks(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("a"))
	if !m.CaptureMode {
		t.Fatal("expected capture mode")
	}
	m = press(t, m, runes("buy"), spaceKey, runes("milk"), enterKey)
	if len(m.State.Tasks) != 1 || m.State.Tasks[0].Text != "buy milk" {
		t.Fatalf("unexpected tasks: %+v", m.State.Tasks)
	}
	if m.State.Mood != 10 {
		t.Fatalf("expected mood 10, got %d", m.State.Mood)
	}
	if m.State.Message == "" {
		t.Fatal("expected feedback message")
	}
	if !m.CaptureMode || m.taskInput.Value() != "" {
		t.Fatalf("expected input cleared and capture kept, value=%q", m.taskInput.Value())
	}

	m = press(t, m, runes("   "), enterKey)
	if len(m.State.Tasks) != 1 || m.State.Mood != 10 {
		t.Fatalf("blank add should change nothing: %+v", m.State)
	}

	m = press(t, m, escKey)
	if m.CaptureMode {
		t.Fatal("expected capture mode closed")
	}
}

func TestToggleAndDeleteFollowCursor(t *testing.T) {
	m, _ := newTestModel(t)
	m = addTask(t, m, "one")
	m = addTask(t, m, "two")

	m = press(t, m, runes("k"), spaceKey)
	if !m.State.Tasks[0].Done || m.State.Tasks[1].Done {
		t.Fatalf("expected first task done: %+v", m.State.Tasks)
	}
	if m.State.Mood != 35 {
		t.Fatalf("expected mood 35, got %d", m.State.Mood)
	}

	m = press(t, m, runes("j"), runes("d"))
	if len(m.State.Tasks) != 1 || m.State.Tasks[0].Text != "one" {
		t.Fatalf("unexpected tasks after delete: %+v", m.State.Tasks)
	}
	if m.TaskCursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.TaskCursor)
	}
	if m.State.Mood != 30 {
		t.Fatalf("expected mood 30, got %d", m.State.Mood)
	}
}

func TestToggleOnEmptyListIsDeclined(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, spaceKey)
	if m.State.Mood != 0 || m.Status.Text != "no task selected" {
		t.Fatalf("unexpected state: mood=%d status=%+v", m.State.Mood, m.Status)
	}
}

func TestSavePromptAndSidebarLoad(t *testing.T) {
	m, _ := newTestModel(t)
	m = addTask(t, m, "pay rent")

	m = press(t, m, runes("s"))
	if !m.SavePrompt {
		t.Fatal("expected save prompt")
	}
	m = press(t, m, runes("bills"), enterKey)
	if m.SavePrompt {
		t.Fatal("expected save prompt closed")
	}
	if len(m.State.Snapshots) != 1 || m.State.Snapshots[0].Name != "bills" {
		t.Fatalf("unexpected snapshots: %+v", m.State.Snapshots)
	}

	m = addTask(t, m, "extra")
	m = press(t, m, tabKey, enterKey)
	if m.Pane != PaneSidebar {
		t.Fatalf("expected sidebar pane, got %q", m.Pane)
	}
	if len(m.State.Tasks) != 1 || m.State.Tasks[0].Text != "pay rent" {
		t.Fatalf("expected saved list restored, got %+v", m.State.Tasks)
	}
	if m.State.Mood != 0 {
		t.Fatalf("expected mood reset, got %d", m.State.Mood)
	}
}

func TestSavePromptEmptyNameAborts(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("s"), runes("  "), enterKey)
	if len(m.State.Snapshots) != 0 {
		t.Fatalf("expected nothing saved, got %+v", m.State.Snapshots)
	}
	if m.Status.Text != "save cancelled" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestPaletteCommands(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("/"), runes("add write tests"), enterKey)
	if m.Palette {
		t.Fatal("expected palette closed after command")
	}
	if len(m.State.Tasks) != 1 || m.State.Tasks[0].Text != "write tests" {
		t.Fatalf("unexpected tasks: %+v", m.State.Tasks)
	}

	m = press(t, m, runes("/"), runes("done 1"), enterKey)
	if !m.State.Tasks[0].Done {
		t.Fatalf("expected task done: %+v", m.State.Tasks)
	}

	m = press(t, m, runes("/"), runes("rm 5"), enterKey)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "no task 5") {
		t.Fatalf("expected out of range error, got %+v", m.Status)
	}
	if len(m.State.Tasks) != 1 {
		t.Fatalf("expected tasks unchanged, got %+v", m.State.Tasks)
	}

	m = press(t, m, runes("/"), runes("save sprint"), enterKey)
	m = press(t, m, runes("/"), runes("rm 1"), enterKey)
	m = press(t, m, runes("/"), runes("load 1"), enterKey)
	if len(m.State.Tasks) != 1 || !m.State.Tasks[0].Done {
		t.Fatalf("expected saved list loaded, got %+v", m.State.Tasks)
	}

	m = press(t, m, runes("/"), runes("bogus"), enterKey)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command error, got %+v", m.Status)
	}
}

func TestBannerExpiredMsgClearsMessage(t *testing.T) {
	m, clock := newTestModel(t)
	m = press(t, m, runes("a"), runes("x"))
	updated, cmd := m.Update(enterKey)
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected expiry tick command")
	}
	if m.State.Message == "" {
		t.Fatal("expected message set")
	}

	clock.now = clock.now.Add(3 * time.Second)
	updated, _ = m.Update(BannerExpiredMsg{At: m.State.MessageExpiresAt})
	m = updated.(Model)
	if m.State.Message != "" {
		t.Fatalf("expected message cleared, got %q", m.State.Message)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	updated, cmd := m.Update(runes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestQuitKeyIsTextInCaptureMode(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("a"), runes("q"))
	if m.Quitting {
		t.Fatal("q should be typed, not quit")
	}
	if m.taskInput.Value() != "q" {
		t.Fatalf("unexpected input %q", m.taskInput.Value())
	}
}

func TestStatusMessages(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	m = updated.(Model)
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	updated, _ = m.Update(ClearStatusMsg{})
	m = updated.(Model)
	if m.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", m.Status)
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m, _ := newTestModel(t)
	m = addTask(t, m, "Buy milk")
	m = press(t, m, runes("s"), runes("groceries"), enterKey)
	m = press(t, m, runes("?"))
	out := m.View()
	for _, want := range []string{"angrytodo", "Buy milk", "groceries", "anger:", "progress:", "help:", "status: saved list: groceries"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view output: %q", want, out)
		}
	}
}
