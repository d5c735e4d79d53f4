package core

type Color struct {
	R, G, B, A float32
}

var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
)

// Vec4 returns the colour as the four floats a std140 vec4 expects.
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

type Rect struct {
	X, Y, Width, Height int
}

type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// NewViewport covers a width x height target with the full depth range.
func NewViewport(width, height int) Viewport {
	return Viewport{
		Width:    float32(width),
		Height:   float32(height),
		MinDepth: 0,
		MaxDepth: 1,
	}
}
