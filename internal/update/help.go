package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/angrytodo/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const paletteGuide = `## Commands

| command | effect |
|---|---|
| /add <text> | add a task |
| /done <n> | complete task n |
| /rm <n> | delete task n |
| /save <name> | save the list |
| /load <n> | load saved list n |
`

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range append(m.globalBindings(), m.paneBindings()...) {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
		Markdown: views.RenderMarkdown(paletteGuide),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Switch, Action: "switch between tasks and saved lists"},
		{Key: m.Keys.Save, Action: "save current list"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) paneBindings() []KeyBinding {
	if m.Pane == PaneSidebar {
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: m.Keys.Load, Action: "load selected list"},
		}
	}
	return []KeyBinding{
		{Key: "j/k", Action: "move selection"},
		{Key: m.Keys.Add, Action: "add tasks (esc to stop)"},
		{Key: "space", Action: "toggle done"},
		{Key: m.Keys.Delete, Action: "delete task"},
	}
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.globalBindings(), m.paneBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
