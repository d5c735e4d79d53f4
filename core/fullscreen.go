package core

// Placement is where a window sits on the desktop and whether it carries
// the system decorations (title bar, borders).
type Placement struct {
	X, Y          int
	Width, Height int
	Decorated     bool
}

// Placer is the part of a window the fullscreen toggle drives.
type Placer interface {
	Placement() Placement
	SetPlacement(p Placement)
	// WorkArea is the usable area of the primary monitor.
	WorkArea() Rect
	SetCursorVisible(visible bool)
}

// Fullscreen switches a window between its normal placement and a borderless
// window covering the primary monitor's work area.
type Fullscreen struct {
	active bool
	saved  Placement
}

func (f *Fullscreen) Active() bool { return f.active }

// Saved is the placement restored by Leave.
func (f *Fullscreen) Saved() Placement { return f.saved }

// Toggle flips the state and returns the new one.
func (f *Fullscreen) Toggle(p Placer) bool {
	if f.active {
		f.Leave(p)
	} else {
		f.Enter(p)
	}
	return f.active
}

func (f *Fullscreen) Enter(p Placer) {
	if f.active {
		return
	}
	cur := p.Placement()
	f.saved = cur
	// An undecorated window is already borderless; leave it where it is.
	if cur.Decorated {
		area := p.WorkArea()
		p.SetPlacement(Placement{
			X:         area.X,
			Y:         area.Y,
			Width:     area.Width,
			Height:    area.Height,
			Decorated: false,
		})
	}
	p.SetCursorVisible(false)
	f.active = true
}

func (f *Fullscreen) Leave(p Placer) {
	if !f.active {
		return
	}
	p.SetPlacement(f.saved)
	p.SetCursorVisible(true)
	f.active = false
}
