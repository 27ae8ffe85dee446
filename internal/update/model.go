package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/angrytodo/internal/engine"
)

type Pane string

const (
	PaneTasks   Pane = "tasks"
	PaneSidebar Pane = "sidebar"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add     string
	Toggle  string
	Delete  string
	Save    string
	Load    string
	Switch  string
	Palette string
	Help    string
	Quit    string
}

type Model struct {
	Engine      *engine.Engine
	State       engine.State
	Pane        Pane
	TaskCursor  int
	ListCursor  int
	CaptureMode bool
	SavePrompt  bool
	Palette     bool
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool

	ctx          context.Context
	taskInput    textinput.Model
	saveInput    textinput.Model
	commandInput textinput.Model
	moodBar      progress.Model
	doneBar      progress.Model
	helpModel    help.Model
}

// BannerExpiredMsg arrives when the feedback message set at At should
// have disappeared; the model re-reads engine state to drop it.
type BannerExpiredMsg struct {
	At time.Time
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel(ctx context.Context, eng *engine.Engine) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Engine: eng,
		State:  eng.State(),
		Pane:   PaneTasks,
		Keys: GlobalKeyMap{
			Add:     "a",
			Toggle:  " ",
			Delete:  "d",
			Save:    "s",
			Load:    "enter",
			Switch:  "tab",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
		ctx: ctx,
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "add> "
	m.taskInput.Placeholder = "what needs doing?"
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 42

	m.saveInput = textinput.New()
	m.saveInput.Prompt = "name> "
	m.saveInput.CharLimit = 64
	m.saveInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.moodBar = progress.New(progress.WithGradient("#F5D76E", "#E0303B"), progress.WithWidth(30), progress.WithoutPercentage())
	m.doneBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())

	m.helpModel = help.New()
}

// refresh pulls the latest engine state and keeps both cursors in range.
func (m *Model) refresh(st engine.State) {
	m.State = st
	m.TaskCursor = clampCursor(m.TaskCursor, len(st.Tasks))
	m.ListCursor = clampCursor(m.ListCursor, len(st.Snapshots))
}

func clampCursor(cur, n int) int {
	if n == 0 || cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
