package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"tessellation-demo/core"
	"tessellation-demo/internal/gpu"
	"tessellation-demo/internal/shader"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !reflect.DeepEqual(cfg.DriverTypes(), gpu.DefaultDriverTypes) {
		t.Errorf("expected default driver order, got %v", cfg.DriverTypes())
	}

	colors := []struct {
		name string
		got  core.Color
		want core.Color
	}{
		{"clear", cfg.Colors.Clear.Core(), core.ColorTransparent},
		{"low", cfg.Colors.Low.Core(), core.ColorGreen},
		{"high", cfg.Colors.High.Core(), core.ColorBlue},
	}
	for _, c := range colors {
		if c.got != c.want {
			t.Errorf("%s colour: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("missing default file should fall back to defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "other.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "demo.yaml", `
window:
  width: 1024
  height: 768
  title: Curves
shaders:
  dir: assets/glsl
tessellation:
  maxSegments: 32
  initialSegments: 4
colors:
  high: [1, 0, 0, 1]
drivers: [software, reference]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 || cfg.Window.Title != "Curves" {
		t.Errorf("window not overridden: %+v", cfg.Window)
	}
	if !cfg.Window.Resizable {
		t.Error("unset fields should keep their defaults")
	}
	if cfg.Tessellation.MinSegments != 1 || cfg.Tessellation.MaxSegments != 32 || cfg.Tessellation.InitialSegments != 4 {
		t.Errorf("tessellation not merged: %+v", cfg.Tessellation)
	}
	if cfg.Colors.High != (Color{1, 0, 0, 1}) || cfg.Colors.Low != (Color{0, 1, 0, 1}) {
		t.Errorf("colors not merged: %+v", cfg.Colors)
	}
	if got := cfg.ShaderPath(cfg.Shaders.TessEval); got != filepath.Join("assets", "glsl", "tess_eval.glsl") {
		t.Errorf("unexpected shader path %q", got)
	}
	paths := cfg.ShaderPaths()
	if paths[shader.Vertex] != filepath.Join("assets", "glsl", "vertex.glsl") {
		t.Errorf("unexpected vertex path %q", paths[shader.Vertex])
	}
	want := []gpu.DriverType{gpu.Software, gpu.Reference}
	if !reflect.DeepEqual(cfg.DriverTypes(), want) {
		t.Errorf("expected %v, got %v", want, cfg.DriverTypes())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"zero width", "window: {width: 0}", "window size"},
		{"min above max", "tessellation: {minSegments: 10, maxSegments: 5}", "below minSegments"},
		{"above tess limit", "tessellation: {maxSegments: 65}", "tessellation limit"},
		{"initial outside", "tessellation: {initialSegments: 51}", "initialSegments"},
		{"unknown driver", "drivers: [metal]", "unknown driver"},
		{"no drivers", "drivers: []", "driver type is required"},
		{"empty stage", "shaders: {fragment: ''}", "shaders.fragment"},
		{"bad yaml", "window: [", "parse"},
		{"bad log level", "logLevel: loud", "logLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "demo.yaml", tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
