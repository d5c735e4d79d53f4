// Package app ties the window, the renderer and the render state together
// and runs the frame loop.
package app

import (
	"fmt"
	"log/slog"

	"tessellation-demo/core"
	"tessellation-demo/scene"
)

// Window is what the loop needs from the OS window.
type Window interface {
	core.Placer
	PollEvents()
	ShouldClose() bool
	SetShouldClose(bool)
	SetTitle(title string)
}

// Renderer draws one frame in four steps so the title can be updated
// between upload and draw.
type Renderer interface {
	Resize(width, height int) error
	Begin()
	Upload(f *scene.Frame)
	Draw()
	Present()
	Destroy()
}

// Key is an input the app reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
)

// State is the life-cycle stage of the app.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// App is the application context. Everything the event handlers and the
// frame loop touch lives here.
type App struct {
	win      Window
	renderer Renderer
	log      *slog.Logger

	title      string
	camera     *scene.Camera
	segments   *scene.Segments
	fullscreen core.Fullscreen

	state           State
	active          bool
	escapeRequested bool
	done            bool
	frames          uint64
}

type Options struct {
	Title    string
	Segments *scene.Segments
	Active   bool
}

func New(win Window, renderer Renderer, log *slog.Logger, opts Options) *App {
	seg := opts.Segments
	if seg == nil {
		seg = scene.DefaultSegments()
	}
	return &App{
		win:      win,
		renderer: renderer,
		log:      log,
		title:    opts.Title,
		camera:   scene.NewCamera(),
		segments: seg,
		active:   opts.Active,
	}
}

func (a *App) State() State              { return a.state }
func (a *App) Active() bool              { return a.active }
func (a *App) Fullscreen() bool          { return a.fullscreen.Active() }
func (a *App) Segments() *scene.Segments { return a.segments }
func (a *App) Camera() *scene.Camera     { return a.camera }
func (a *App) Frames() uint64            { return a.frames }
func (a *App) EscapeRequested() bool     { return a.escapeRequested }

// Start performs the initial resize and moves the app to running.
func (a *App) Start(width, height int) error {
	if err := a.resize(width, height); err != nil {
		a.log.Error("initial resize failed", "err", err)
		return fmt.Errorf("initial resize: %w", err)
	}
	a.state = StateRunning
	return nil
}

// Run pumps events until the window closes or escape is pressed. A frame
// is rendered whenever the window is active and no events are pending.
func (a *App) Run() {
	for !a.done {
		a.win.PollEvents()
		if a.win.ShouldClose() {
			a.done = true
			break
		}
		if !a.active {
			continue
		}
		if a.escapeRequested {
			a.done = true
			break
		}
		a.renderFrame()
	}
}

func (a *App) renderFrame() {
	r := a.renderer
	r.Begin()

	f := scene.NewFrame(a.camera, a.segments)
	r.Upload(&f)

	a.win.SetTitle(a.Title())

	r.Draw()
	r.Present()
	a.frames++
}

// Title is the window title for the current segment count.
func (a *App) Title() string {
	return fmt.Sprintf("%s | Segments - %d", a.title, a.segments.Count())
}

// Close restores the window if fullscreen and releases the renderer.
// It is safe to call more than once.
func (a *App) Close() {
	if a.state == StateDestroyed {
		return
	}
	if a.fullscreen.Active() {
		a.fullscreen.Leave(a.win)
	}
	a.renderer.Destroy()
	a.state = StateDestroyed
	a.done = true
}
