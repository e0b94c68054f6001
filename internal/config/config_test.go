package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	content := `
canvas_width = 1280.0
canvas_height = 800.0
default_color = "#118AB2"
complexity = 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(1280), cfg.CanvasWidth)
	assert.Equal(t, float32(800), cfg.CanvasHeight)
	assert.Equal(t, "#118AB2", cfg.DefaultColor)
	assert.Equal(t, 7, cfg.Complexity)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().Palette, cfg.Palette)
	assert.Equal(t, Default().StrokeWidth, cfg.StrokeWidth)
}

func TestLoadMalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("canvas_width = ["), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEmptyPaletteGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	require.NoError(t, os.WriteFile(path, []byte(`palette = []`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Palette, cfg.Palette)
}
