package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tessellation-demo/internal/gpu"
	"tessellation-demo/platform"
)

// RequiredFeatureLevel is the first GL version with tessellation stages
// and separable programs.
var RequiredFeatureLevel = gpu.FeatureLevel{Major: 4, Minor: 1}

// Device is a window with a current GL context: the rendering device, its
// immediate context and the swap chain in one.
type Device struct {
	Window *platform.Window
	Driver gpu.DriverType
	Level  gpu.FeatureLevel

	Version  string
	Renderer string
	Vendor   string
}

// driverEnv is the Mesa loader environment that selects each driver type.
// Empty values are unset.
var driverEnv = map[gpu.DriverType]map[string]string{
	gpu.Hardware:  {"LIBGL_ALWAYS_SOFTWARE": "", "GALLIUM_DRIVER": ""},
	gpu.Software:  {"LIBGL_ALWAYS_SOFTWARE": "1", "GALLIUM_DRIVER": "llvmpipe"},
	gpu.Reference: {"LIBGL_ALWAYS_SOFTWARE": "1", "GALLIUM_DRIVER": "softpipe"},
}

// OpenDevice tries each driver type in order and returns the first device
// whose context reaches RequiredFeatureLevel.
func OpenDevice(cfg platform.WindowConfig, types []gpu.DriverType, log *slog.Logger) (*Device, error) {
	dev, driver, err := gpu.Select(types, func(d gpu.DriverType) (*Device, error) {
		dev, err := openDevice(cfg, d)
		if err != nil {
			log.Debug("driver type rejected", "type", d, "err", err)
		}
		return dev, err
	})
	if err != nil {
		log.Error("could not create device, context and swap chain", "err", err)
		return nil, err
	}

	log.Info("device, context and swap chain created")
	log.Info("selected driver type", "type", driver)
	log.Info("selected feature level", "level", "OpenGL "+dev.Level.String(),
		"version", dev.Version, "renderer", dev.Renderer, "vendor", dev.Vendor)
	return dev, nil
}

func openDevice(cfg platform.WindowConfig, driver gpu.DriverType) (*Device, error) {
	env, ok := driverEnv[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s", gpu.ErrUnknownDriver, driver)
	}
	for k, v := range env {
		if v == "" {
			os.Unsetenv(k)
		} else {
			os.Setenv(k, v)
		}
	}

	// The loader picks its driver when GLFW connects to the display, so each
	// attempt gets a fresh GLFW instance.
	if err := platform.Init(); err != nil {
		return nil, err
	}
	win, err := platform.NewWindow(cfg, platform.ContextVersion{
		Major: RequiredFeatureLevel.Major,
		Minor: RequiredFeatureLevel.Minor,
	})
	if err != nil {
		platform.Terminate()
		return nil, err
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		platform.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	level := gpu.FeatureLevel{Major: int(major), Minor: int(minor)}
	if !level.AtLeast(RequiredFeatureLevel) {
		win.Destroy()
		platform.Terminate()
		return nil, fmt.Errorf("%w: have %s, need %s", gpu.ErrFeatureLevel, level, RequiredFeatureLevel)
	}

	return &Device{
		Window:   win,
		Driver:   driver,
		Level:    level,
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
	}, nil
}

// Close destroys the window and its context and shuts GLFW down.
func (d *Device) Close() {
	if d.Window != nil {
		d.Window.Destroy()
		d.Window = nil
	}
	platform.Terminate()
}

// checkError returns the oldest pending GL error, if any.
func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: %w", op, gpu.CodeError(code))
	}
	return nil
}

// ErrIncompleteTarget means a framebuffer failed its completeness check.
var ErrIncompleteTarget = errors.New("opengl: render target incomplete")
