// Package grid lays out a rows x cols grid of square cells on a drawing surface.
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfig      = errors.New("invalid grid config")
	ErrDegenerateGeometry = errors.New("degenerate grid geometry")
)

// MaxCells bounds Rows*Cols. Larger grids are rejected as invalid.
const MaxCells = 1 << 20

// DefaultColor is the fill used when a Config carries the zero color.
var DefaultColor = colorRed

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Validate reports ErrInvalidConfig for configs no surface can render.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("rows=%d cols=%d: %w", c.Rows, c.Cols, ErrInvalidConfig)
	}
	if c.Rows > MaxCells/c.Cols {
		return fmt.Errorf("rows=%d cols=%d exceeds %d cells: %w", c.Rows, c.Cols, MaxCells, ErrInvalidConfig)
	}
	if !finite(c.Interval) || c.Interval < 0 {
		return fmt.Errorf("interval=%g: %w", c.Interval, ErrInvalidConfig)
	}
	switch c.Mode {
	case FitToBounds:
	case FixedSize:
		if !finite(c.NodeSize) {
			return fmt.Errorf("node size=%g: %w", c.NodeSize, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("mode=%d: %w", int(c.Mode), ErrInvalidConfig)
	}
	return nil
}

// Fit computes the cell size and offsets of cfg on a surface of the given size.
//
// In FixedSize mode the surface is ignored and the grid starts one pitch away
// from the origin on both axes. In FitToBounds mode the grid spans the binding
// axis exactly and is centered on the other one.
func Fit(bounds Size, cfg Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	l := Layout{Bounds: bounds}
	rows, cols := float64(cfg.Rows), float64(cfg.Cols)
	iv := cfg.Interval

	switch cfg.Mode {
	case FixedSize:
		l.NodeSize = cfg.NodeSize
		l.Pitch = cfg.NodeSize + iv
		// the +1 margin of the fixed layout
		l.XOffset = l.Pitch
		l.YOffset = l.Pitch
	default:
		if !finite(bounds.Width) || !finite(bounds.Height) {
			return Layout{}, fmt.Errorf("bounds %gx%g: %w", bounds.Width, bounds.Height, ErrDegenerateGeometry)
		}
		// width/height > cols/rows without dividing by a zero height
		if bounds.Width*rows > cols*bounds.Height {
			l.Binding = AxisHeight
			l.NodeSize = (bounds.Height+iv)/rows - iv
			l.Pitch = l.NodeSize + iv
			l.XOffset = (bounds.Width - cols*l.Pitch + iv) / 2
		} else {
			l.Binding = AxisWidth
			l.NodeSize = (bounds.Width+iv)/cols - iv
			l.Pitch = l.NodeSize + iv
			l.YOffset = (bounds.Height - rows*l.Pitch + iv) / 2
		}
	}
	if !(l.NodeSize >= 0) {
		return Layout{}, fmt.Errorf("node size %g on %gx%g: %w", l.NodeSize, bounds.Width, bounds.Height, ErrDegenerateGeometry)
	}
	return l, nil
}

// Cell returns the top-left corner of the cell at (row, col).
func (l Layout) Cell(row, col int) Point {
	return Point{
		X: l.XOffset + l.Pitch*float64(col),
		Y: l.YOffset + l.Pitch*float64(row),
	}
}

// Render is the repaint entry point: it lays cfg out on bounds and returns one
// filled square per cell, row-major. On error no rectangles are returned.
func Render(bounds Size, cfg Config) (Batch, error) {
	l, err := Fit(bounds, cfg)
	if err != nil {
		return nil, err
	}
	col := cfg.Color
	if col == colorZero {
		col = DefaultColor
	}
	size := Size{Width: l.NodeSize, Height: l.NodeSize}
	b := make(Batch, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for c := 0; c < cfg.Cols; c++ {
			b = append(b, FilledRect{Origin: l.Cell(row, c), Size: size, Color: col})
		}
	}
	return b, nil
}

// Extent returns the smallest box holding every rectangle of the batch.
func (b Batch) Extent() (lo, hi Point) {
	if len(b) == 0 {
		return Point{}, Point{}
	}
	lo = b[0].Origin
	hi = Point{X: b[0].Origin.X + b[0].Size.Width, Y: b[0].Origin.Y + b[0].Size.Height}
	for _, r := range b[1:] {
		lo.X = math.Min(lo.X, r.Origin.X)
		lo.Y = math.Min(lo.Y, r.Origin.Y)
		hi.X = math.Max(hi.X, r.Origin.X+r.Size.Width)
		hi.Y = math.Max(hi.Y, r.Origin.Y+r.Size.Height)
	}
	return lo, hi
}

// Renderer draws a fixed Config on whatever surface it is handed.
type Renderer struct {
	cfg Config
}

// New validates cfg and returns a renderer bound to a copy of it.
func New(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg}, nil
}

// Config returns the configuration the renderer was built with.
func (r *Renderer) Config() Config { return r.cfg }

// Draw renders the grid on a surface of the given size.
func (r *Renderer) Draw(bounds Size) (Batch, error) {
	return Render(bounds, r.cfg)
}
