package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tessellation-demo/internal/app"
	"tessellation-demo/internal/config"
	"tessellation-demo/internal/logging"
	"tessellation-demo/internal/opengl"
	"tessellation-demo/platform"
	"tessellation-demo/scene"
)

func main() {
	configPath := flag.String("config", config.DefaultFilename, "path to the YAML settings file")
	logPath := flag.String("log", "debug.log", "path to the debug log, truncated on start")
	shaderDir := flag.String("shaders", "", "directory holding the shader stages (overrides the config)")
	flag.Parse()

	os.Exit(run(*configPath, *logPath, *shaderDir))
}

func run(configPath, logPath, shaderDir string) int {
	level := new(slog.LevelVar)
	logFile, err := logging.Open(logPath, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logFile.Close()
	log := logFile.Logger

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("could not load settings", "path", configPath, "err", err)
		return 1
	}
	if lvl, err := logging.ParseLevel(cfg.LogLevel); err == nil {
		level.Set(lvl)
	}
	if shaderDir != "" {
		cfg.Shaders.Dir = shaderDir
	}

	dev, err := opengl.OpenDevice(platform.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		VSync:     cfg.Window.VSync,
	}, cfg.DriverTypes(), log)
	if err != nil {
		return 1
	}
	defer dev.Close()

	renderer, err := opengl.NewRenderer(dev, opengl.RendererConfig{
		Shaders:    cfg.ShaderPaths(),
		Patch:      scene.DefaultPatch(),
		ClearColor: cfg.Colors.Clear.Core(),
	}, log)
	if err != nil {
		log.Error("could not build the tessellation pipeline", "err", err)
		return 1
	}

	t := cfg.Tessellation
	segments := scene.NewSegments(t.InitialSegments, t.MinSegments, t.MaxSegments,
		cfg.Colors.Low.Core(), cfg.Colors.High.Core())

	win := dev.Window
	a := app.New(win, renderer, log, app.Options{
		Title:    cfg.Window.Title,
		Segments: segments,
	})
	defer a.Close()

	win.SetKeyDownCallback(func(key int) {
		a.HandleKey(appKey(key))
	})
	win.SetCharCallback(a.HandleChar)
	win.SetFramebufferSizeCallback(a.HandleResize)
	win.SetFocusCallback(a.HandleFocus)
	win.SetCloseCallback(a.HandleClose)

	if err := a.Start(win.GetFramebufferSize()); err != nil {
		return 1
	}

	win.Show()
	a.HandleFocus(win.Focused())
	if cfg.Window.Fullscreen {
		a.ToggleFullscreen()
	}

	printControls(segments)
	log.Info("entering frame loop", "segments", segments.Count())
	a.Run()
	log.Info("frame loop finished", "frames", a.Frames())
	return 0
}

func appKey(key int) app.Key {
	switch key {
	case platform.KeyEscape:
		return app.KeyEscape
	case platform.KeyUp:
		return app.KeyUp
	case platform.KeyDown:
		return app.KeyDown
	}
	return app.KeyUnknown
}

func printControls(seg *scene.Segments) {
	fmt.Println("===========================================")
	fmt.Println("  Tessellation Shader")
	fmt.Println("===========================================")
	fmt.Println("Controls:")
	fmt.Printf("  Up/Down  - Add/remove a segment (%d..%d)\n", seg.Min(), seg.Max())
	fmt.Println("  F        - Toggle fullscreen")
	fmt.Println("  ESC      - Exit")
}
