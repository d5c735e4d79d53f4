package app

// HandleKey reacts to a key press or auto-repeat.
func (a *App) HandleKey(key Key) {
	switch key {
	case KeyEscape:
		a.escapeRequested = true
	case KeyUp:
		a.segments.Increase()
	case KeyDown:
		a.segments.Decrease()
	}
}

// HandleChar reacts to text input; only F toggles anything.
func (a *App) HandleChar(c rune) {
	switch c {
	case 'F', 'f':
		a.ToggleFullscreen()
	}
}

// ToggleFullscreen switches between the saved window placement and a
// borderless window over the monitor work area.
func (a *App) ToggleFullscreen() bool {
	on := a.fullscreen.Toggle(a.win)
	a.log.Debug("fullscreen toggled", "fullscreen", on)
	return on
}

// HandleResize rebuilds the render target and projection. Failures are
// logged and the app keeps running.
func (a *App) HandleResize(width, height int) {
	if a.state != StateRunning {
		return
	}
	if err := a.resize(width, height); err != nil {
		a.log.Error("resize failed", "width", width, "height", height, "err", err)
	}
}

func (a *App) HandleFocus(focused bool) {
	a.active = focused
}

func (a *App) HandleClose() {
	a.win.SetShouldClose(true)
	a.done = true
}

func (a *App) resize(width, height int) error {
	if err := a.renderer.Resize(width, height); err != nil {
		return err
	}
	a.camera.Resize(width, height)
	return nil
}
