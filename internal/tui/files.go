package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"gridpane/internal/config"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func isPreset(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || !isPreset(e.Name()) {
			continue
		}
		items = append(items, fileItem{title: e.Name(), desc: "preset", path: filepath.Join(m.cwd, e.Name())})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no presets in current directory"
	}
}

// loadPath loads a preset into the model. On error the previous
// configuration stays active.
func (m *Model) loadPath(p string) {
	f, err := config.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	if err := m.applyPreset(f); err != nil {
		return
	}
	m.status = "loaded: " + filepath.Base(p)
}
