package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/angrytodo/internal/commands"
	"github.com/sandeepkv93/angrytodo/internal/engine"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m = m.executePaletteCommand(m.commandInput.Value())
	default:
		if r, ok := typedRunes(msg); ok {
			m.commandInput.SetValue(m.commandInput.Value() + r)
			return m
		}
		m.commandInput, _ = m.commandInput.Update(msg)
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette = false
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand(input string) Model {
	m.closePalette()

	cmd, err := commands.Parse(strings.TrimSpace(input))
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			r := m.Engine.Add(a.Text)
			return m.commandResult(r, fmt.Sprintf("added: %s", a.Text), "task text is empty")
		},
		Done: func(a commands.IndexArgs) (commands.Result, error) {
			r := m.Engine.Toggle(a.Index)
			return m.commandResult(r, fmt.Sprintf("completed task %d", a.Index+1), fmt.Sprintf("no task %d", a.Index+1))
		},
		Rm: func(a commands.IndexArgs) (commands.Result, error) {
			r := m.Engine.Remove(a.Index)
			return m.commandResult(r, fmt.Sprintf("deleted task %d", a.Index+1), fmt.Sprintf("no task %d", a.Index+1))
		},
		Save: func(a commands.SaveArgs) (commands.Result, error) {
			r := m.Engine.Save(m.ctx, a.Name)
			return m.commandResult(r, fmt.Sprintf("saved list: %s", strings.TrimSpace(a.Name)), "list name is empty")
		},
		Load: func(a commands.IndexArgs) (commands.Result, error) {
			r := m.Engine.Load(a.Index)
			if r.Changed {
				m.TaskCursor = 0
			}
			return m.commandResult(r, fmt.Sprintf("loaded list %d", a.Index+1), fmt.Sprintf("no saved list %d", a.Index+1))
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}

func (m *Model) commandResult(r engine.Result, ok, declined string) (commands.Result, error) {
	m.refresh(r.State)
	if !r.Changed {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: declined}
	}
	return commands.Result{Message: ok}, nil
}
