package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	footerHeight = 1
)

// screen is the terminal layout derived from the window size and split state.
type screen struct {
	contentW, contentH int
	bodyX              int // first column of the split
	canvasW, panelW    int
}

func (m Model) screen() screen {
	s := screen{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
	}
	if m.showSidebar {
		s.bodyX = sidebarWidth + 1
	}
	s.canvasW, s.panelW = m.split.Sizes()
	return s
}

// resize propagates the window size to the split and the preset list.
func (m *Model) resize() {
	s := m.screen()
	m.split.Resize(s.contentW - s.bodyX)
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, s.contentH-2)
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := m.screen()

	// Header
	header := titleStyle.Render(" " + m.file.Title + " ")
	header = lipgloss.NewStyle().Width(s.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// First pane: canvas or paste area
	var canvas string
	if m.pasteMode {
		m.ta.SetWidth(max(1, s.canvasW))
		m.ta.SetHeight(min(s.contentH, 12))
		canvas = m.ta.View()
	} else if out, err := renderCanvas(m.cfg, s.canvasW, s.contentH); err != nil {
		canvas = errorCanvas(err, s.canvasW, s.contentH)
	} else {
		canvas = out
	}
	first := lipgloss.NewStyle().Width(s.canvasW).MaxWidth(s.canvasW).Height(s.contentH).MaxHeight(s.contentH).Render(canvas)

	// Divider
	ds := dividerStyle
	if m.split.Dragging() {
		ds = draggedStyle
	}
	divider := ds.Render(strings.TrimSuffix(strings.Repeat("│\n", s.contentH), "\n"))

	// Second pane: text panel
	second := lipgloss.NewStyle().Width(s.panelW).MaxWidth(s.panelW).Height(s.contentH).MaxHeight(s.contentH).Render(m.renderPanel(s))

	body := lipgloss.JoinHorizontal(lipgloss.Top, first, divider, second)
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(s.contentW).MaxWidth(s.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(s.contentW).Height(m.height).Render(ui)
}

func (m Model) renderPanel(s screen) string {
	parts := []string{panelText.Render(m.file.Text)}
	if m.showLayout && s.panelW >= 20 {
		m.refreshLayoutTable(s.canvasW, s.contentH, s.panelW)
		parts = append(parts, boxStyle.Render(m.tbl.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"m mode",
		"+/- size",
		"i/I gap",
		"[/] divider",
		"Tab presets",
		"p paste",
		"a layout",
		"s png",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
