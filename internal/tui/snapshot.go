package tui

import (
	"image/color"
	"log"
	"path/filepath"

	"gridpane/internal/export"
	"gridpane/internal/grid"
)

// pixels per braille dot in PNG snapshots
const snapshotScale = 4

// exportSnapshot writes the current canvas to gridpane.png in the working
// directory.
func (m *Model) exportSnapshot() {
	s := m.screen()
	bounds := canvasBounds(s.canvasW, s.contentH)
	batch, err := grid.Render(bounds, m.cfg)
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	path := filepath.Join(m.cwd, "gridpane.png")
	err = export.SavePNG(path, batch, export.Options{
		Width:      int(bounds.Width) * snapshotScale,
		Height:     int(bounds.Height) * snapshotScale,
		Scale:      snapshotScale,
		Background: color.Black,
	})
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	log.Printf("exported %d cells to %s", len(batch), path)
	m.status = "saved " + path
}
