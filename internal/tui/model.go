package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"gridpane/internal/config"
	"gridpane/internal/grid"
	"gridpane/internal/pane"
)

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// Preset explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Current configuration. cfg is derived from file and only replaced as a
	// whole, so every repaint sees a consistent snapshot.
	file config.File
	cfg  grid.Config

	// split between canvas and text panel
	split *pane.Split

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layout table
	showLayout bool
	tbl        table.Model

	watcher *config.Watcher
}

// New builds a model from an already loaded configuration.
func New(f config.File) Model {
	m := Model{
		helpVisible: true,
		showLayout:  true,
		status:      "gridpane ready",
		split:       pane.New(f.Divider, pane.Vertical),
	}
	m.split.SetMinPane(10)
	m.applyPreset(f)
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Presets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a YAML grid config here. Ctrl+S applies; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(8)
	m.tbl = table.New(table.WithFocused(false))
	m.tbl.SetColumns([]table.Column{{Title: "key", Width: 10}, {Title: "value", Width: 16}})
	m.tbl.SetHeight(layoutRows + 2)
	m.refreshDir()
	return m
}

// NewWithPath loads path and keeps watching it for edits.
func NewWithPath(path string) Model {
	m := New(config.Default())
	m.loadPath(path)
	w, err := config.NewWatcher(path)
	if err != nil {
		m.status = "watch error: " + err.Error()
		return m
	}
	m.watcher = w
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForConfig()
}

// Close stops the config watcher, if any.
func (m Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

// Config returns the grid configuration the next repaint will use.
func (m Model) Config() grid.Config { return m.cfg }

// applyFile replaces the configuration. On error the previous one stays and
// the status line shows the error.
func (m *Model) applyFile(f config.File) error {
	cfg, err := f.Grid()
	if err != nil {
		m.status = "config error: " + err.Error()
		return err
	}
	m.file = f
	m.cfg = cfg
	return nil
}

// applyPreset applies f and also moves the divider when f sets one.
func (m *Model) applyPreset(f config.File) error {
	if err := m.applyFile(f); err != nil {
		return err
	}
	if f.Divider > 0 {
		m.split.SetDividerPosition(f.Divider)
	}
	return nil
}
