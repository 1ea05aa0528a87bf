// Package config loads user-adjustable application settings from YAML.
// The built-in defaults ship embedded in the binary; a config file in the
// user's config directory overrides them field by field.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"spectralab/resources"
)

// Config holds the application settings.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Plot   PlotConfig   `yaml:"plot"`
	Export ExportConfig `yaml:"export"`
}

// WindowConfig sets the initial main window geometry.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// PlotConfig sets the plot decoration and the on-screen frame size in pixels.
type PlotConfig struct {
	Title     string `yaml:"title"`
	XLabel    string `yaml:"x_label"`
	YLabel    string `yaml:"y_label"`
	LineColor string `yaml:"line_color"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

// ExportConfig controls image export.
type ExportConfig struct {
	// DPI is the raster resolution used when saving the figure.
	DPI int `yaml:"dpi"`
}

// Default returns the embedded built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(resources.DefaultConfig, cfg); err != nil {
		// The embedded file is fixed at build time; failing to parse it is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// DefaultPath returns the user override file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "spectralab", "config.yaml")
}

// Load reads the config file at path on top of the built-in defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseColor converts a "#RRGGBB" hex string to an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
