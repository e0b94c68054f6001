// Package config loads the studio's TOML settings file. A missing file
// is normal and yields the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable studio settings.
type Config struct {
	CanvasWidth  float32  `toml:"canvas_width"`
	CanvasHeight float32  `toml:"canvas_height"`
	Palette      []string `toml:"palette"`
	DefaultColor string   `toml:"default_color"`
	StrokeWidth  float32  `toml:"stroke_width"`
	Complexity   int      `toml:"complexity"`
}

// Default returns the built-in settings: the classic studio palette and
// a mid-range complexity.
func Default() Config {
	return Config{
		CanvasWidth:  900,
		CanvasHeight: 700,
		Palette:      []string{"#FF6B35", "#F7931E", "#FFD23F", "#06FFA5", "#118AB2", "#073B4C"},
		DefaultColor: "#FF6B35",
		StrokeWidth:  3,
		Complexity:   5,
	}
}

// Load reads path, layering the file's values over the defaults. A
// missing file returns the defaults with no error; a file that does not
// parse returns the defaults plus the error so the caller can report it
// and keep running.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = Default().Palette
	}
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = cfg.Palette[0]
	}
	return cfg, nil
}
