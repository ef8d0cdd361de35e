package tui

import "math"

// Each terminal cell holds a 2x4 block of braille dots. Dots are roughly
// square on common terminal fonts, so grid geometry is computed in dots.
const (
	dotsX = 2
	dotsY = 4
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel lights the dot at (mx, my); dots outside the buffer are ignored.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/dotsX, mx%dotsX
	cy, ry := my/dotsY, my%dotsY
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// fillRect sets every dot whose center lies inside the rectangle. A non-empty
// rectangle too small to cover any dot center still lights the dot under its
// center, so tiny cells stay visible.
func (b *brailleBuf) fillRect(x, y, w, h float64) {
	if !(w > 0 && h > 0) {
		return
	}
	x0, x1, ok := clampSpan(x, w, b.w*dotsX)
	if !ok {
		return
	}
	y0, y1, ok := clampSpan(y, h, b.h*dotsY)
	if !ok {
		return
	}
	for my := y0; my < y1; my++ {
		for mx := x0; mx < x1; mx++ {
			b.setPixel(mx, my)
		}
	}
}

// span returns the dot range [lo, hi) whose centers fall in [p, p+n).
func span(p, n float64) (int, int) {
	lo := int(math.Ceil(p - 0.5))
	hi := int(math.Ceil(p + n - 0.5))
	if hi <= lo {
		c := int(math.Floor(p + n/2))
		return c, c + 1
	}
	return lo, hi
}

// clampSpan is span limited to the dots [0, limit). It works in float64 until
// the range is clamped so huge rectangles cannot overflow int.
func clampSpan(p, n float64, limit int) (int, int, bool) {
	if !(p < float64(limit)) || !(p+n > 0) {
		return 0, 0, false
	}
	lo := math.Max(p, -1)
	hi := math.Min(p+n, float64(limit)+1)
	a, z := span(lo, hi-lo)
	a, z = max(a, 0), min(z, limit)
	return a, z, a < z
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
