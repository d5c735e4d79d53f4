// Package platform owns the GLFW window, its GL context and the events it
// delivers. Every call must come from the main OS thread.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"tessellation-demo/core"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

// ContextVersion is the GL version requested from GLFW.
type ContextVersion struct {
	Major, Minor int
}

// Init initialises GLFW. Call Terminate once every window is destroyed.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	return nil
}

func Terminate() {
	glfw.Terminate()
}

// NewWindow creates a hidden window with a core-profile context of at least
// version and makes the context current.
func NewWindow(config WindowConfig, version ContextVersion) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, version.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) Show() {
	w.Handle.Show()
	w.Handle.Focus()
}

func (w *Window) Focused() bool {
	return w.Handle.GetAttrib(glfw.Focused) == glfw.True
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

// PollEvents dispatches every pending event and returns without waiting.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) SetTitle(title string) {
	if title == w.Title {
		return
	}
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
}

// Placement, SetPlacement, WorkArea and SetCursorVisible implement core.Placer.

func (w *Window) Placement() core.Placement {
	x, y := w.Handle.GetPos()
	width, height := w.Handle.GetSize()
	return core.Placement{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Decorated: w.Handle.GetAttrib(glfw.Decorated) == glfw.True,
	}
}

func (w *Window) SetPlacement(p core.Placement) {
	w.Handle.SetAttrib(glfw.Decorated, boolToInt(p.Decorated))
	w.Handle.SetPos(p.X, p.Y)
	w.Handle.SetSize(p.Width, p.Height)
}

func (w *Window) WorkArea() core.Rect {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		p := w.Placement()
		return core.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
	}
	x, y, width, height := monitor.GetWorkarea()
	return core.Rect{X: x, Y: y, Width: width, Height: height}
}

func (w *Window) SetCursorVisible(visible bool) {
	if visible {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

// KeyCallback receives key presses and auto-repeats; releases are dropped.
type KeyCallback func(key int)

func (w *Window) SetKeyDownCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press || action == glfw.Repeat {
			cb(int(key))
		}
	})
}

// CharCallback receives translated text input.
type CharCallback func(char rune)

func (w *Window) SetCharCallback(cb CharCallback) {
	w.Handle.SetCharCallback(func(win *glfw.Window, char rune) {
		cb(char)
	})
}

// ResizeCallback receives the new framebuffer size in pixels.
type ResizeCallback func(width, height int)

func (w *Window) SetFramebufferSizeCallback(cb ResizeCallback) {
	w.Handle.SetFramebufferSizeCallback(func(win *glfw.Window, width, height int) {
		cb(width, height)
	})
}

func (w *Window) SetFocusCallback(cb func(focused bool)) {
	w.Handle.SetFocusCallback(func(win *glfw.Window, focused bool) {
		cb(focused)
	})
}

func (w *Window) SetCloseCallback(cb func()) {
	w.Handle.SetCloseCallback(func(win *glfw.Window) {
		cb()
	})
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

const (
	KeyEscape = int(glfw.KeyEscape)
	KeyUp     = int(glfw.KeyUp)
	KeyDown   = int(glfw.KeyDown)
)
