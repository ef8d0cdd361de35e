package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridpane/internal/config"
	"gridpane/internal/grid"
)

// canvasBounds is the drawing surface of a w x h cell canvas, in dots.
func canvasBounds(w, h int) grid.Size {
	return grid.Size{Width: float64(w * dotsX), Height: float64(h * dotsY)}
}

// renderCanvas repaints the grid for a w x h cell canvas. Geometry is
// recomputed from scratch on every call.
func renderCanvas(cfg grid.Config, w, h int) (string, error) {
	if w <= 0 || h <= 0 {
		return "", nil
	}
	batch, err := grid.Render(canvasBounds(w, h), cfg)
	if err != nil {
		return "", err
	}
	br := newBrailleBuf(w, h)
	for _, r := range batch {
		br.fillRect(r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
	}
	// one render call uses a single color, so the whole canvas shares a style
	fg := cfg.Color
	if len(batch) > 0 {
		fg = batch[0].Color
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(config.Hex(fg)))
	lines := br.toLines()
	for i, ln := range lines {
		lines[i] = style.Render(ln)
	}
	return strings.Join(lines, "\n"), nil
}

// errorCanvas fills the canvas area with a centered error message.
func errorCanvas(err error, w, h int) string {
	msg := errStyle.Width(max(1, w)).Render(err.Error())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
}
