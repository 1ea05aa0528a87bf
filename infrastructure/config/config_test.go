package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Errorf("default window size = %gx%g, want positive", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Plot.Title == "" || cfg.Plot.XLabel == "" || cfg.Plot.YLabel == "" {
		t.Errorf("default plot labels incomplete: %+v", cfg.Plot)
	}
	if cfg.Plot.Width <= 0 || cfg.Plot.Height <= 0 {
		t.Errorf("default plot frame = %dx%d, want positive", cfg.Plot.Width, cfg.Plot.Height)
	}
	if cfg.Export.DPI <= 0 {
		t.Errorf("default export DPI = %d, want positive", cfg.Export.DPI)
	}
	if _, err := ParseColor(cfg.Plot.LineColor); err != nil {
		t.Errorf("default line color %q does not parse: %v", cfg.Plot.LineColor, err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Plot.Title != Default().Plot.Title {
		t.Errorf("Load() title = %q, want default", cfg.Plot.Title)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "plot:\n  title: XPS Survey\nexport:\n  dpi: 300\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Plot.Title != "XPS Survey" {
		t.Errorf("title = %q, want XPS Survey", cfg.Plot.Title)
	}
	if cfg.Export.DPI != 300 {
		t.Errorf("export DPI = %d, want 300", cfg.Export.DPI)
	}
	// Untouched fields keep their defaults.
	if cfg.Plot.XLabel != Default().Plot.XLabel {
		t.Errorf("x label = %q, want default", cfg.Plot.XLabel)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("plot: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{input: "#1f77b4", want: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}},
		{input: "ff0000", want: color.RGBA{R: 0xff, A: 0xff}},
		{input: "#FFFFFF", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{input: "#fff", wantErr: true},
		{input: "#zzzzzz", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
