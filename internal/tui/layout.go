package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"gridpane/internal/config"
	"gridpane/internal/grid"
)

const layoutRows = 10

// layoutTableRows describes the geometry of cfg on a canvas of w x h cells.
func layoutTableRows(cfg grid.Config, w, h int) []table.Row {
	bounds := canvasBounds(w, h)
	rows := []table.Row{
		{"mode", cfg.Mode.String()},
		{"grid", fmt.Sprintf("%d x %d", cfg.Rows, cfg.Cols)},
		{"interval", fmt.Sprintf("%g", cfg.Interval)},
		{"surface", fmt.Sprintf("%gx%g", bounds.Width, bounds.Height)},
		{"color", config.Hex(cfg.Color)},
	}
	l, err := grid.Fit(bounds, cfg)
	if err != nil {
		return append(rows, table.Row{"error", err.Error()})
	}
	return append(rows,
		table.Row{"node size", fmt.Sprintf("%.3f", l.NodeSize)},
		table.Row{"x offset", fmt.Sprintf("%.3f", l.XOffset)},
		table.Row{"y offset", fmt.Sprintf("%.3f", l.YOffset)},
		table.Row{"binding", l.Binding.String()},
		table.Row{"cells", fmt.Sprintf("%d", cfg.Rows*cfg.Cols)},
	)
}

// refreshLayoutTable rebuilds the table for the current canvas size.
func (m *Model) refreshLayoutTable(w, h, panelW int) {
	valW := max(8, panelW-10-6)
	m.tbl.SetRows(nil)
	m.tbl.SetColumns([]table.Column{{Title: "key", Width: 10}, {Title: "value", Width: valW}})
	m.tbl.SetRows(layoutTableRows(m.cfg, w, h))
	m.tbl.SetWidth(10 + valW + 4)
}
