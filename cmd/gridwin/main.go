package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridpane/internal/config"
)

func main() {
	configPath := flag.String("config", "", "YAML grid config (watched for changes)")
	width := flag.Int("width", 1024, "initial window width")
	height := flag.Int("height", 640, "initial window height")
	flag.Parse()

	f := config.Default()
	f.Mode = "fixed"
	f.Rows, f.Cols = 120, 200
	f.Divider = 100
	if *configPath != "" {
		var err error
		if f, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	game, err := NewGame(f)
	if err != nil {
		log.Fatal(err)
	}
	if *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		game.reload, game.errs = w.Changes, w.Errors
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(f.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func rectOf(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
