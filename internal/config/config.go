// Package config loads the demo settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tessellation-demo/core"
	"tessellation-demo/internal/gpu"
	"tessellation-demo/internal/shader"
)

const DefaultFilename = "tessellation.yaml"

type Config struct {
	Window       WindowConfig       `yaml:"window"`
	Shaders      ShaderConfig       `yaml:"shaders"`
	Tessellation TessellationConfig `yaml:"tessellation"`
	Colors       ColorConfig        `yaml:"colors"`
	Drivers      []string           `yaml:"drivers"`
	LogLevel     string             `yaml:"logLevel"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// ShaderConfig names the four stage sources. File names are joined onto Dir.
type ShaderConfig struct {
	Dir         string `yaml:"dir"`
	Vertex      string `yaml:"vertex"`
	TessControl string `yaml:"tessControl"`
	TessEval    string `yaml:"tessEval"`
	Fragment    string `yaml:"fragment"`
}

type TessellationConfig struct {
	MinSegments     int `yaml:"minSegments"`
	MaxSegments     int `yaml:"maxSegments"`
	InitialSegments int `yaml:"initialSegments"`
}

type ColorConfig struct {
	Clear Color `yaml:"clear"`
	Low   Color `yaml:"low"`
	High  Color `yaml:"high"`
}

// Color is written in YAML as a flow sequence: [r, g, b, a].
type Color [4]float32

func (c Color) Core() core.Color {
	return core.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Tessellation Shader",
			Resizable: true,
		},
		Shaders: ShaderConfig{
			Dir:         "shaders",
			Vertex:      "vertex.glsl",
			TessControl: "tess_control.glsl",
			TessEval:    "tess_eval.glsl",
			Fragment:    "fragment.glsl",
		},
		Tessellation: TessellationConfig{
			MinSegments:     1,
			MaxSegments:     50,
			InitialSegments: 1,
		},
		Colors: ColorConfig{
			Clear: Color(core.ColorTransparent.Vec4()),
			Low:   Color(core.ColorGreen.Vec4()),
			High:  Color(core.ColorBlue.Vec4()),
		},
		Drivers:  []string{"hardware", "software", "reference"},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is the default file name, so the demo runs without any config.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && filepath.Base(path) == DefaultFilename {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	t := c.Tessellation
	if t.MinSegments < 1 {
		return fmt.Errorf("minSegments must be at least 1, got %d", t.MinSegments)
	}
	if t.MaxSegments < t.MinSegments {
		return fmt.Errorf("maxSegments %d is below minSegments %d", t.MaxSegments, t.MinSegments)
	}
	// 64 is the smallest GL_MAX_TESS_GEN_LEVEL an implementation may report.
	if t.MaxSegments > 64 {
		return fmt.Errorf("maxSegments %d exceeds the tessellation limit of 64", t.MaxSegments)
	}
	if t.InitialSegments < t.MinSegments || t.InitialSegments > t.MaxSegments {
		return fmt.Errorf("initialSegments %d outside [%d, %d]", t.InitialSegments, t.MinSegments, t.MaxSegments)
	}
	s := c.Shaders
	for name, file := range map[string]string{
		"vertex": s.Vertex, "tessControl": s.TessControl, "tessEval": s.TessEval, "fragment": s.Fragment,
	} {
		if file == "" {
			return fmt.Errorf("shaders.%s is empty", name)
		}
	}
	if len(c.Drivers) == 0 {
		return errors.New("at least one driver type is required")
	}
	if _, err := gpu.ParseDriverTypes(c.Drivers); err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	return nil
}

// DriverTypes returns the configured driver order. Validate must have passed.
func (c Config) DriverTypes() []gpu.DriverType {
	d, err := gpu.ParseDriverTypes(c.Drivers)
	if err != nil {
		return gpu.DefaultDriverTypes
	}
	return d
}

// ShaderPath joins a stage file onto the shader directory.
func (c Config) ShaderPath(file string) string {
	return filepath.Join(c.Shaders.Dir, file)
}

// ShaderPaths returns the file of every stage, in pipeline order.
func (c Config) ShaderPaths() shader.Paths {
	return shader.Paths{
		shader.Vertex:      c.ShaderPath(c.Shaders.Vertex),
		shader.TessControl: c.ShaderPath(c.Shaders.TessControl),
		shader.TessEval:    c.ShaderPath(c.Shaders.TessEval),
		shader.Fragment:    c.ShaderPath(c.Shaders.Fragment),
	}
}
