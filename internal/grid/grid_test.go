package grid

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-4

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestRenderScenario(t *testing.T) {
	b, err := Render(Size{Width: 100, Height: 50}, Config{Rows: 10, Cols: 10})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(b) != 100 {
		t.Fatalf("expected 100 cells, got %d", len(b))
	}
	first, last := b[0], b[len(b)-1]
	if first.Origin != (Point{X: 25, Y: 0}) || first.Size != (Size{Width: 5, Height: 5}) {
		t.Fatalf("first cell = %+v", first)
	}
	if last.Origin != (Point{X: 70, Y: 45}) || last.Size != (Size{Width: 5, Height: 5}) {
		t.Fatalf("last cell = %+v", last)
	}
	if first.Color != DefaultColor {
		t.Fatalf("expected default color, got %v", first.Color)
	}
}

func TestFitBindingAxis(t *testing.T) {
	cases := []struct {
		name    string
		bounds  Size
		cfg     Config
		binding Axis
	}{
		{"wide_surface", Size{Width: 400, Height: 100}, Config{Rows: 10, Cols: 20, Interval: 1}, AxisHeight},
		{"tall_surface", Size{Width: 100, Height: 400}, Config{Rows: 10, Cols: 20, Interval: 1}, AxisWidth},
		{"exact_ratio", Size{Width: 200, Height: 100}, Config{Rows: 10, Cols: 20, Interval: 0}, AxisWidth},
		{"odd_counts", Size{Width: 317, Height: 211}, Config{Rows: 7, Cols: 13, Interval: 2.5}, AxisWidth},
		{"zero_height", Size{Width: 10, Height: 0}, Config{Rows: 3, Cols: 3}, AxisHeight},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, err := Fit(c.bounds, c.cfg)
			if err != nil {
				t.Fatalf("Fit: %v", err)
			}
			if l.Binding != c.binding {
				t.Fatalf("expected %v binding, got %v", c.binding, l.Binding)
			}
			rows, cols := float64(c.cfg.Rows), float64(c.cfg.Cols)
			iv := c.cfg.Interval
			switch l.Binding {
			case AxisWidth:
				if got := cols*(l.NodeSize+iv) - iv; !near(got, c.bounds.Width) {
					t.Errorf("grid width %g, surface %g", got, c.bounds.Width)
				}
				if l.XOffset != 0 {
					t.Errorf("x offset %g on binding axis", l.XOffset)
				}
				if want := (c.bounds.Height - rows*(l.NodeSize+iv) + iv) / 2; !near(l.YOffset, want) {
					t.Errorf("y offset %g, want %g", l.YOffset, want)
				}
			case AxisHeight:
				if got := rows*(l.NodeSize+iv) - iv; !near(got, c.bounds.Height) {
					t.Errorf("grid height %g, surface %g", got, c.bounds.Height)
				}
				if l.YOffset != 0 {
					t.Errorf("y offset %g on binding axis", l.YOffset)
				}
				if want := (c.bounds.Width - cols*(l.NodeSize+iv) + iv) / 2; !near(l.XOffset, want) {
					t.Errorf("x offset %g, want %g", l.XOffset, want)
				}
			}
		})
	}
}

func TestRenderCentersNonBindingAxis(t *testing.T) {
	bounds := Size{Width: 300, Height: 100}
	b, err := Render(bounds, Config{Rows: 4, Cols: 5, Interval: 3})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lo, hi := b.Extent()
	if !near(lo.X, bounds.Width-hi.X) {
		t.Fatalf("margins differ: left %g right %g", lo.X, bounds.Width-hi.X)
	}
	if !near(lo.Y, 0) || !near(hi.Y, bounds.Height) {
		t.Fatalf("grid does not span height: %g..%g", lo.Y, hi.Y)
	}
}

func TestRenderProperties(t *testing.T) {
	cases := []struct {
		name   string
		bounds Size
		cfg    Config
	}{
		{"fit_small", Size{Width: 64, Height: 48}, Config{Rows: 3, Cols: 4, Interval: 1}},
		{"fit_dense", Size{Width: 800, Height: 480}, Config{Rows: 20, Cols: 32, Interval: 1}},
		{"fit_no_gap", Size{Width: 123, Height: 77}, Config{Rows: 9, Cols: 5}},
		{"fixed", Size{Width: 800, Height: 480}, Config{Rows: 12, Cols: 20, NodeSize: 3, Interval: 1, Mode: FixedSize}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := Render(c.bounds, c.cfg)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if len(b) != c.cfg.Rows*c.cfg.Cols {
				t.Fatalf("expected %d cells, got %d", c.cfg.Rows*c.cfg.Cols, len(b))
			}
			size := b[0].Size
			if size.Width != size.Height {
				t.Fatalf("cell not square: %+v", size)
			}
			for i := range b {
				if b[i].Size != size {
					t.Fatalf("cell %d size %+v differs from %+v", i, b[i].Size, size)
				}
				for j := i + 1; j < len(b); j++ {
					if overlaps(b[i], b[j]) {
						t.Fatalf("cells %d and %d overlap: %+v %+v", i, j, b[i], b[j])
					}
				}
			}
			// row-major
			if c.cfg.Cols > 1 && !(b[1].Origin.X > b[0].Origin.X && b[1].Origin.Y == b[0].Origin.Y) {
				t.Fatalf("second cell %+v is not right of first %+v", b[1].Origin, b[0].Origin)
			}
		})
	}
}

func overlaps(a, b FilledRect) bool {
	// touching edges are not an overlap
	return a.Origin.X+eps < b.Origin.X+b.Size.Width && b.Origin.X+eps < a.Origin.X+a.Size.Width &&
		a.Origin.Y+eps < b.Origin.Y+b.Size.Height && b.Origin.Y+eps < a.Origin.Y+a.Size.Height
}

func TestRenderIdempotent(t *testing.T) {
	bounds := Size{Width: 331.7, Height: 129.3}
	cfg := Config{Rows: 11, Cols: 17, Interval: 0.75}
	a, err := Render(bounds, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, _ := Render(bounds, cfg)
	if len(a) != len(b) {
		t.Fatalf("length changed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRenderFixedSize(t *testing.T) {
	cfg := Config{Rows: 120, Cols: 200, NodeSize: 3, Interval: 1, Mode: FixedSize}
	// the surface does not influence fixed layouts
	for _, bounds := range []Size{{Width: 10, Height: 10}, {Width: 2000, Height: 1000}} {
		b, err := Render(bounds, cfg)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if got := b[0].Origin; got != (Point{X: 4, Y: 4}) {
			t.Fatalf("first cell at %+v, want (4,4)", got)
		}
		if got := b[1].Origin; got != (Point{X: 8, Y: 4}) {
			t.Fatalf("second cell at %+v, want (8,4)", got)
		}
		if got := b[len(b)-1].Origin; got != (Point{X: 800, Y: 480}) {
			t.Fatalf("last cell at %+v, want (800,480)", got)
		}
		if b[0].Size != (Size{Width: 3, Height: 3}) {
			t.Fatalf("cell size %+v", b[0].Size)
		}
	}
}

func TestRenderRejects(t *testing.T) {
	cases := []struct {
		name   string
		bounds Size
		cfg    Config
		want   error
	}{
		{"zero_rows", Size{Width: 10, Height: 10}, Config{Rows: 0, Cols: 5, Interval: 1}, ErrInvalidConfig},
		{"zero_cols", Size{Width: 10, Height: 10}, Config{Rows: 5, Cols: 0, Interval: 1}, ErrInvalidConfig},
		{"negative_rows", Size{Width: 10, Height: 10}, Config{Rows: -1, Cols: 5}, ErrInvalidConfig},
		{"negative_interval", Size{Width: 10, Height: 10}, Config{Rows: 2, Cols: 2, Interval: -1}, ErrInvalidConfig},
		{"nan_interval", Size{Width: 10, Height: 10}, Config{Rows: 2, Cols: 2, Interval: math.NaN()}, ErrInvalidConfig},
		{"unknown_mode", Size{Width: 10, Height: 10}, Config{Rows: 2, Cols: 2, Mode: Mode(7)}, ErrInvalidConfig},
		{"fixed_inf_node", Size{Width: 10, Height: 10}, Config{Rows: 2, Cols: 2, Mode: FixedSize, NodeSize: math.Inf(1)}, ErrInvalidConfig},
		{"fixed_negative_node", Size{Width: 10, Height: 10}, Config{Rows: 2, Cols: 2, Mode: FixedSize, NodeSize: -2, Interval: 1}, ErrDegenerateGeometry},
		{"surface_smaller_than_gaps", Size{Width: 5, Height: 5}, Config{Rows: 10, Cols: 10, Interval: 1}, ErrDegenerateGeometry},
		{"negative_bounds", Size{Width: -10, Height: -10}, Config{Rows: 2, Cols: 2}, ErrDegenerateGeometry},
		{"too_many_cells", Size{Width: 100, Height: 100}, Config{Rows: math.MaxInt / 2, Cols: math.MaxInt / 2}, ErrInvalidConfig},
		{"just_over_max_cells", Size{Width: 100, Height: 100}, Config{Rows: MaxCells/2 + 1, Cols: 2}, ErrInvalidConfig},
		{"nan_bounds", Size{Width: math.NaN(), Height: 10}, Config{Rows: 2, Cols: 2}, ErrDegenerateGeometry},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := Render(c.bounds, c.cfg)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if b != nil {
				t.Fatalf("expected no geometry, got %d cells", len(b))
			}
		})
	}
}

func TestValidateAcceptsMaxCells(t *testing.T) {
	if err := (Config{Rows: MaxCells / 4, Cols: 4}).Validate(); err != nil {
		t.Fatalf("grid of exactly MaxCells rejected: %v", err)
	}
}

func TestRendererSnapshotsConfig(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 3, Interval: 1}
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg.Rows = 50
	b, err := r.Draw(Size{Width: 30, Height: 20})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(b) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(b))
	}
	if _, err := New(Config{Rows: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
