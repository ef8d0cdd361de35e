// Package export rasterizes grid geometry into PNG images.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/gogpu/gg"

	"gridpane/internal/grid"
)

type Options struct {
	// Width and Height of the image in pixels.
	Width  int
	Height int
	// Scale maps batch units to pixels. Zero means 1.
	Scale      float64
	Background color.Color
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// Draw fills every rectangle of b on dc. Rectangles are filled in batch order.
func Draw(dc *gg.Context, b grid.Batch, scale float64) error {
	dc.Push()
	defer dc.Pop()
	dc.Scale(scale, scale)
	for _, r := range b {
		dc.SetColor(r.Color)
		dc.DrawRectangle(r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("export: fill: %w", err)
		}
	}
	return nil
}

// Image renders b into a new image.
func Image(b grid.Batch, opts Options) (image.Image, error) {
	dc, err := render(b, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders b and encodes it as PNG to w.
func WritePNG(w io.Writer, b grid.Batch, opts Options) error {
	dc, err := render(b, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG writes the PNG to path, replacing any existing file.
func SavePNG(path string, b grid.Batch, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WritePNG(f, b, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return f.Close()
}

func render(b grid.Batch, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("export: image size %dx%d", opts.Width, opts.Height)
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	dc.ClearWithColor(gg.FromColor(bg))
	if err := Draw(dc, b, opts.scale()); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}
