package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/angrytodo/internal/mood"
	"github.com/sandeepkv93/angrytodo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		prev := m.State.MessageExpiresAt
		next, cmd := m.handleKey(typed)
		if at := next.State.MessageExpiresAt; !at.IsZero() && !at.Equal(prev) {
			cmd = tea.Batch(cmd, expiryCmd(at))
		}
		return next, cmd
	case BannerExpiredMsg:
		m.refresh(m.Engine.State())
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette {
		return m.handlePaletteKey(msg), nil
	}
	if m.SavePrompt {
		return m.handleSavePromptKey(msg), nil
	}
	if m.CaptureMode {
		return m.handleCaptureKey(msg), nil
	}

	switch keyStr {
	case m.Keys.Palette:
		m.Palette = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Switch:
		if m.Pane == PaneTasks {
			m.Pane = PaneSidebar
		} else {
			m.Pane = PaneTasks
		}
		return m, nil
	case m.Keys.Save:
		m.SavePrompt = true
		m.saveInput.SetValue("")
		m.saveInput.Focus()
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	if m.Pane == PaneSidebar {
		return m.handleSidebarKey(msg), nil
	}
	return m.handleTaskKey(msg), nil
}

func expiryCmd(at time.Time) tea.Cmd {
	d := time.Until(at)
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return BannerExpiredMsg{At: at} })
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	overlay := ""
	switch {
	case m.Palette:
		overlay = views.RenderCommandPalette(true, m.commandInput.View())
	case m.SavePrompt:
		overlay = views.RenderSavePrompt(true, m.saveInput.View())
	case m.HelpVisible:
		overlay = m.renderHelpView()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("angrytodo | mood: %s | pane: %s", mood.Label(m.State.Mood), m.Pane),
		Sidebar:    m.renderSidebar(),
		Main:       m.renderTaskPanel(),
		Banner:     m.State.Message,
		Overlay:    overlay,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s add | space done | %s delete | %s save | %s switch | %s cmd | %s help | %s quit",
			m.Keys.Add, m.Keys.Delete, m.Keys.Save, m.Keys.Switch, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
