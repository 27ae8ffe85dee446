package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/angrytodo/internal/mood"
	"github.com/sandeepkv93/angrytodo/internal/views"
)

func (m Model) handleTaskKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		m.TaskCursor = clampCursor(m.TaskCursor+1, len(m.State.Tasks))
	case "k", "up":
		m.TaskCursor = clampCursor(m.TaskCursor-1, len(m.State.Tasks))
	case m.Keys.Add, "i", "enter":
		m.CaptureMode = true
		m.taskInput.SetValue("")
		m.taskInput.Focus()
	case m.Keys.Toggle, "c":
		if len(m.State.Tasks) == 0 {
			m.Status = StatusBar{Text: "no task selected"}
			return m
		}
		text := m.State.Tasks[m.TaskCursor].Text
		res := m.Engine.Toggle(m.TaskCursor)
		m.refresh(res.State)
		if res.Changed {
			m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", text)}
		}
	case m.Keys.Delete, "x":
		if len(m.State.Tasks) == 0 {
			m.Status = StatusBar{Text: "no task selected"}
			return m
		}
		text := m.State.Tasks[m.TaskCursor].Text
		res := m.Engine.Remove(m.TaskCursor)
		m.refresh(res.State)
		if res.Changed {
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", text)}
		}
	}
	return m
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.CaptureMode = false
		m.taskInput.SetValue("")
		m.taskInput.Blur()
		return m
	case "enter":
		text := m.taskInput.Value()
		res := m.Engine.Add(text)
		m.refresh(res.State)
		if !res.Changed {
			m.Status = StatusBar{Text: "empty task ignored"}
			return m
		}
		m.TaskCursor = len(m.State.Tasks) - 1
		m.taskInput.SetValue("")
		m.Status = StatusBar{Text: fmt.Sprintf("added: %s", strings.TrimSpace(text))}
		return m
	}
	if r, ok := typedRunes(msg); ok {
		m.taskInput.SetValue(m.taskInput.Value() + r)
		return m
	}
	m.taskInput, _ = m.taskInput.Update(msg)
	return m
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		m.ListCursor = clampCursor(m.ListCursor+1, len(m.State.Snapshots))
	case "k", "up":
		m.ListCursor = clampCursor(m.ListCursor-1, len(m.State.Snapshots))
	case m.Keys.Load, "l":
		m = m.loadList(m.ListCursor)
	}
	return m
}

func (m Model) handleSavePromptKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.SavePrompt = false
		m.saveInput.Blur()
		m.Status = StatusBar{Text: "save cancelled"}
		return m
	case "enter":
		name := strings.TrimSpace(m.saveInput.Value())
		m.SavePrompt = false
		m.saveInput.SetValue("")
		m.saveInput.Blur()
		if name == "" {
			m.Status = StatusBar{Text: "save cancelled"}
			return m
		}
		res := m.Engine.Save(m.ctx, name)
		m.refresh(res.State)
		if res.Changed {
			m.Status = StatusBar{Text: fmt.Sprintf("saved list: %s", name)}
		}
		return m
	}
	if r, ok := typedRunes(msg); ok {
		m.saveInput.SetValue(m.saveInput.Value() + r)
		return m
	}
	m.saveInput, _ = m.saveInput.Update(msg)
	return m
}

func (m Model) loadList(index int) Model {
	if len(m.State.Snapshots) == 0 {
		m.Status = StatusBar{Text: "no saved lists"}
		return m
	}
	res := m.Engine.Load(index)
	m.refresh(res.State)
	if !res.Changed {
		m.Status = StatusBar{Text: fmt.Sprintf("no saved list %d", index+1), IsError: true}
		return m
	}
	m.TaskCursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("loaded list: %s", m.State.Snapshots[index].Name)}
	return m
}

func (m Model) renderTaskPanel() string {
	items := make([]views.TaskItemData, 0, len(m.State.Tasks))
	for _, t := range m.State.Tasks {
		items = append(items, views.TaskItemData{Text: t.Text, Done: t.Done})
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		Title:        "tasks:",
		InputView:    m.taskInput.View(),
		CaptureMode:  m.CaptureMode,
		Items:        items,
		Cursor:       m.TaskCursor,
		Focused:      m.Pane == PaneTasks,
		MoodView:     m.moodBar.ViewAs(float64(m.State.Mood) / 100),
		MoodScore:    m.State.Mood,
		MoodLabel:    mood.Label(m.State.Mood),
		ProgressView: m.doneBar.ViewAs(m.State.Progress),
		ProgressPct:  int(m.State.Progress*100 + 0.5),
	})
}

func (m Model) renderSidebar() string {
	lists := make([]views.SavedListData, 0, len(m.State.Snapshots))
	for _, s := range m.State.Snapshots {
		saved := ""
		if !s.SavedAt.IsZero() {
			saved = s.SavedAt.Local().Format("01/02 15:04")
		}
		lists = append(lists, views.SavedListData{Name: s.Name, TaskCount: s.TaskCount, SavedAt: saved})
	}
	return views.RenderSidebar(views.SidebarData{
		Lists:   lists,
		Cursor:  m.ListCursor,
		Focused: m.Pane == PaneSidebar,
	})
}

func typedRunes(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}
