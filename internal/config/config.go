// Package config loads the YAML description of the demo: window text, grid
// shape and divider position.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gridpane/internal/grid"
)

type File struct {
	Title    string  `yaml:"title"`
	Text     string  `yaml:"text"`
	Mode     string  `yaml:"mode"`
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Interval float64 `yaml:"interval"`
	NodeSize float64 `yaml:"node_size"`
	Color    string  `yaml:"color"`
	Divider  int     `yaml:"divider"`
}

// Default mirrors the demo: a red fitted grid next to a greeting.
func Default() File {
	return File{
		Title:    "A cool application",
		Text:     "hello, the world",
		Mode:     "fit",
		Rows:     20,
		Cols:     32,
		Interval: 1,
		NodeSize: 3,
		Color:    "red",
		Divider:  0,
	}
}

// Load reads and validates a config file. Keys missing from the file keep
// their default value.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML on top of Default. Unknown keys are an error.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("unmarshal: %w", err)
	}
	if _, err := f.Grid(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Marshal renders f back to YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

func ParseMode(s string) (grid.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fit", "fit_to_bounds":
		return grid.FitToBounds, nil
	case "fixed", "fixed_size":
		return grid.FixedSize, nil
	default:
		return 0, fmt.Errorf("mode %q: %w", s, grid.ErrInvalidConfig)
	}
}

// Grid converts the file into a renderer configuration.
func (f File) Grid() (grid.Config, error) {
	mode, err := ParseMode(f.Mode)
	if err != nil {
		return grid.Config{}, err
	}
	col, err := ParseColor(f.Color)
	if err != nil {
		return grid.Config{}, err
	}
	cfg := grid.Config{
		Rows:     f.Rows,
		Cols:     f.Cols,
		Interval: f.Interval,
		NodeSize: f.NodeSize,
		Mode:     mode,
		Color:    col,
	}
	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}
