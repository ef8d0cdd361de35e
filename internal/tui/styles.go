package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errFg     = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")
	dragCol   = lipgloss.Color("#0000FF")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle     = lipgloss.NewStyle().Foreground(errFg)
	dividerStyle = lipgloss.NewStyle().Foreground(borderCol)
	draggedStyle = lipgloss.NewStyle().Foreground(dragCol).Bold(true)
	panelText    = lipgloss.NewStyle().Bold(true).Padding(1, 1)
)
