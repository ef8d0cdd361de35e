package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridpane/internal/config"
	"gridpane/internal/grid"
	"gridpane/internal/pane"
)

const dividerWidth = 6

var (
	panelBg    = color.RGBA{R: 0x0f, G: 0x14, B: 0x1a, A: 0xff}
	dividerCol = color.RGBA{R: 0x24, G: 0x31, B: 0x41, A: 0xff}
	outlineCol = color.RGBA{B: 0xff, A: 0xff}
)

// Game hosts the grid canvas and a text panel in a draggable split.
type Game struct {
	file  config.File
	cfg   grid.Config
	split *pane.Split

	width, height int
	err           error

	reload <-chan config.File
	errs   <-chan error
}

func NewGame(f config.File) (*Game, error) {
	cfg, err := f.Grid()
	if err != nil {
		return nil, err
	}
	s := pane.New(f.Divider, pane.Vertical)
	s.SetThickness(dividerWidth)
	s.SetMinPane(80)
	return &Game{file: f, cfg: cfg, split: s}, nil
}

func (g *Game) Update() error {
	g.pollReload()

	x, _ := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.split.BeginDrag(x)
	}
	if g.split.Dragging() {
		if p, ok := g.split.DragTo(x); ok {
			g.split.SetDividerPosition(p)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.split.EndDrag()
		}
	}
	if g.split.OnDivider(x) || g.split.Dragging() {
		ebiten.SetCursorShape(ebiten.CursorShapeEWResize)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		f := g.file
		if f.Mode == grid.FixedSize.String() {
			f.Mode = grid.FitToBounds.String()
		} else {
			f.Mode = grid.FixedSize.String()
		}
		g.apply(f)
	}
	return nil
}

func (g *Game) pollReload() {
	select {
	case f := <-g.reload:
		g.apply(f)
		if f.Divider > 0 {
			g.split.SetDividerPosition(f.Divider)
		}
	case err := <-g.errs:
		g.err = err
	default:
	}
}

func (g *Game) apply(f config.File) {
	cfg, err := f.Grid()
	if err != nil {
		g.err = err
		return
	}
	g.file, g.cfg, g.err = f, cfg, nil
	ebiten.SetWindowTitle(f.Title)
}

func (g *Game) Draw(screen *ebiten.Image) {
	first, second := g.split.Sizes()
	if first > 0 && g.height > 0 {
		// cells outside the first pane are clipped by the sub-image
		canvas := screen.SubImage(rectOf(0, 0, first, g.height)).(*ebiten.Image)
		drawGrid(canvas, g.cfg, first, g.height)
	}

	div := g.split.Position()
	vector.FillRect(screen, float32(div), 0, dividerWidth, float32(g.height), dividerCol, false)

	px := div + dividerWidth
	vector.FillRect(screen, float32(px), 0, float32(second), float32(g.height), panelBg, false)
	vector.StrokeRect(screen, float32(px)+0.5, 0.5, float32(second)-1, float32(g.height)-1, 1, outlineCol, false)
	ebitenutil.DebugPrintAt(screen, g.file.Text, px+12, 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %dx%d  divider %d", g.cfg.Mode, g.cfg.Rows, g.cfg.Cols, div), px+12, 36)
	if g.err != nil {
		ebitenutil.DebugPrintAt(screen, g.err.Error(), px+12, 60)
	}
}

// drawGrid repaints the canvas from scratch for its current size.
func drawGrid(dst *ebiten.Image, cfg grid.Config, w, h int) {
	batch, err := grid.Render(grid.Size{Width: float64(w), Height: float64(h)}, cfg)
	if err != nil {
		ebitenutil.DebugPrintAt(dst, err.Error(), 8, 8)
		return
	}
	for _, r := range batch {
		vector.FillRect(dst, float32(r.Origin.X), float32(r.Origin.Y), float32(r.Size.Width), float32(r.Size.Height), r.Color, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.split.Resize(outsideWidth)
	}
	return outsideWidth, outsideHeight
}
