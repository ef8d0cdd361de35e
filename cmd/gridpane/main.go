package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gridpane/internal/config"
	"gridpane/internal/export"
	"gridpane/internal/grid"
	"gridpane/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML grid config (watched for changes)")
	exportPath := flag.String("export", "", "write the grid as PNG to this path and exit")
	width := flag.Int("width", 800, "export width in pixels")
	height := flag.Int("height", 480, "export height in pixels")
	debug := flag.Bool("debug", false, "log to gridpane.log")
	flag.Parse()

	if *exportPath != "" {
		if err := exportPNG(*configPath, *exportPath, *width, *height); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *debug {
		f, err := tea.LogToFile("gridpane.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tui.Model
	if *configPath != "" {
		m = tui.NewWithPath(*configPath)
	} else {
		m = tui.New(config.Default())
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if fm, ok := final.(tui.Model); ok {
		_ = fm.Close()
	}
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func exportPNG(configPath, out string, w, h int) error {
	f := config.Default()
	if configPath != "" {
		var err error
		if f, err = config.Load(configPath); err != nil {
			return err
		}
	}
	cfg, err := f.Grid()
	if err != nil {
		return err
	}
	batch, err := grid.Render(grid.Size{Width: float64(w), Height: float64(h)}, cfg)
	if err != nil {
		return fmt.Errorf("render %dx%d: %w", w, h, err)
	}
	if err := export.SavePNG(out, batch, export.Options{Width: w, Height: h, Background: color.White}); err != nil {
		return err
	}
	log.Printf("wrote %d cells to %s", len(batch), out)
	return nil
}
