package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gridpane/internal/config"
	"gridpane/internal/grid"
)

// dividerMsg asks the model to move the split divider.
type dividerMsg struct{ position int }

type configMsg struct{ file config.File }

type configErrMsg struct{ err error }

func moveDivider(p int) tea.Cmd {
	return func() tea.Msg { return dividerMsg{position: p} }
}

// waitForConfig blocks until the watcher reports a reload or an error.
func (m Model) waitForConfig() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case f := <-w.Changes:
			return configMsg{file: f}
		case err := <-w.Errors:
			return configErrMsg{err: err}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case dividerMsg:
		m.split.SetDividerPosition(msg.position)
		m.status = fmt.Sprintf("divider: %d", m.split.Position())
		return m, nil
	case configMsg:
		if err := m.applyPreset(msg.file); err == nil {
			m.status = "reloaded " + m.watcher.Path()
		}
		return m, m.waitForConfig()
	case configErrMsg:
		m.status = "reload error: " + msg.err.Error()
		return m, m.waitForConfig()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "ctrl+s":
				doc := strings.TrimSpace(m.ta.Value())
				if doc == "" {
					m.status = "paste: empty"
					return m, nil
				}
				f, err := config.Parse([]byte(doc))
				if err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				m.applyPreset(f)
				m.selPath = ""
				m.status = "applied pasted config"
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "m":
			f := m.file
			if f.Mode == grid.FixedSize.String() {
				f.Mode = grid.FitToBounds.String()
			} else {
				f.Mode = grid.FixedSize.String()
			}
			m.applyFile(f)
			m.status = "mode: " + m.cfg.Mode.String()
		case "+", "=":
			f := m.file
			f.Rows++
			f.Cols++
			m.applyFile(f)
			m.status = fmt.Sprintf("grid: %d x %d", m.cfg.Rows, m.cfg.Cols)
		case "-", "_":
			if f := m.file; f.Rows > 1 && f.Cols > 1 {
				f.Rows--
				f.Cols--
				m.applyFile(f)
			}
			m.status = fmt.Sprintf("grid: %d x %d", m.cfg.Rows, m.cfg.Cols)
		case "i":
			if f := m.file; f.Interval >= 1 {
				f.Interval--
				m.applyFile(f)
			}
			m.status = fmt.Sprintf("interval: %g", m.cfg.Interval)
		case "I":
			f := m.file
			f.Interval++
			m.applyFile(f)
			m.status = fmt.Sprintf("interval: %g", m.cfg.Interval)
		case "[":
			return m, moveDivider(m.split.Position() - 2)
		case "]":
			return m, moveDivider(m.split.Position() + 2)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			m.resize()
		case "p":
			m.pasteMode = true
			if data, err := m.file.Marshal(); err == nil {
				m.ta.SetValue(string(data))
			}
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showLayout = !m.showLayout
		case "s":
			m.exportSnapshot()
		case "r":
			if m.selPath != "" {
				m.loadPath(m.selPath)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		s := m.screen()
		p := msg.X - s.bodyX
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && msg.Y >= headerHeight && msg.Y < headerHeight+s.contentH {
				if m.split.BeginDrag(p) {
					m.status = "dragging divider"
				}
			}
		case tea.MouseActionMotion:
			if pos, ok := m.split.DragTo(p); ok {
				return m, moveDivider(pos)
			}
		case tea.MouseActionRelease:
			if m.split.Dragging() {
				m.split.EndDrag()
				m.status = fmt.Sprintf("divider: %d", m.split.Position())
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
