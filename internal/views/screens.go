package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	Text string
	Done bool
}

type TaskPanelData struct {
	Title        string
	InputView    string
	CaptureMode  bool
	Items        []TaskItemData
	Cursor       int
	Focused      bool
	MoodView     string
	MoodScore    int
	MoodLabel    string
	ProgressView string
	ProgressPct  int
}

type SavedListData struct {
	Name      string
	TaskCount int
	SavedAt   string
}

type SidebarData struct {
	Lists   []SavedListData
	Cursor  int
	Focused bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Markdown string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString(fmt.Sprintf("anger: %s %d (%s)\n", data.MoodView, data.MoodScore, data.MoodLabel))
	if data.CaptureMode {
		b.WriteString(data.InputView + "\n")
	} else {
		b.WriteString("actions: [a]add [space]done [d]delete [s]save\n")
	}
	b.WriteString("\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks)\n")
	}
	for i, item := range data.Items {
		cursor := " "
		if data.Focused && i == data.Cursor {
			cursor = ">"
		}
		check := "[ ]"
		if item.Done {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s %s\n", cursor, i+1, check, item.Text))
	}
	b.WriteString(fmt.Sprintf("\nprogress: %s %d%%", data.ProgressView, data.ProgressPct))
	return strings.TrimSpace(b.String())
}

func RenderSidebar(data SidebarData) string {
	var b strings.Builder
	b.WriteString("saved lists:\n")
	if len(data.Lists) == 0 {
		b.WriteString("(none yet)")
		return b.String()
	}
	for i, l := range data.Lists {
		cursor := " "
		if data.Focused && i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s (%d)", cursor, i+1, l.Name, l.TaskCount))
		if l.SavedAt != "" {
			b.WriteString(" " + l.SavedAt)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

func RenderSavePrompt(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "save list as (enter to confirm, esc to cancel):\n" + inputView
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	if data.Markdown != "" {
		b.WriteString("\n" + data.Markdown)
	}
	return b.String()
}
