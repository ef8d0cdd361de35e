package grid

import "image/color"

// Mode selects how the cell size is obtained.
type Mode int

const (
	// FitToBounds derives the cell size from the drawing surface.
	FitToBounds Mode = iota
	// FixedSize uses Config.NodeSize as is.
	FixedSize
)

func (m Mode) String() string {
	switch m {
	case FitToBounds:
		return "fit"
	case FixedSize:
		return "fixed"
	default:
		return "unknown"
	}
}

// Axis names the side of the surface that determines the cell size.
type Axis int

const (
	AxisNone Axis = iota
	AxisWidth
	AxisHeight
)

func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	default:
		return "none"
	}
}

type Size struct {
	Width  float64
	Height float64
}

type Point struct {
	X float64
	Y float64
}

// FilledRect is one fill-rectangle draw call.
type FilledRect struct {
	Origin Point
	Size   Size
	Color  color.RGBA
}

// Batch holds the rectangles of one render call in row-major order.
type Batch []FilledRect

// Config describes the grid. Rows and Cols must be positive; NodeSize is only
// read in FixedSize mode.
type Config struct {
	Rows     int
	Cols     int
	Interval float64
	NodeSize float64
	Mode     Mode
	Color    color.RGBA
}

// Layout is the geometry derived for one surface size.
type Layout struct {
	Bounds   Size
	NodeSize float64
	// Pitch is NodeSize + Interval.
	Pitch   float64
	XOffset float64
	YOffset float64
	Binding Axis
}

var (
	colorZero = color.RGBA{}
	colorRed  = color.RGBA{R: 0xff, A: 0xff}
)
