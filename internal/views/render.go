package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Sidebar    string
	Main       string
	Banner     string
	Overlay    string
	StatusLine string
	Footer     string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sidebarWidth = 28
	mainWidth    = 58
)

func RenderApp(data AppData) string {
	sidebar := panelStyle.Width(sidebarWidth).Render(data.Sidebar)
	main := data.Main
	if data.Banner != "" {
		main = bannerStyle.Width(mainWidth-4).Render(data.Banner) + "\n" + main
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, panelStyle.Width(mainWidth).Render(main))

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
	}
	if data.Overlay != "" {
		lines = append(lines, panelStyle.Render(data.Overlay))
	}
	lines = append(lines, status)
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
