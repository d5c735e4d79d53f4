package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	DefaultFOV       = 45.0 // vertical, degrees
	DefaultNearPlane = 0.1
	DefaultFarPlane  = 100.0

	// PatchDistance is how far in front of the eye the patch is placed.
	PatchDistance = 6.0
)

// Camera holds the projection for the current window size. The view is
// fixed at the origin looking down -Z.
type Camera struct {
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	AspectRatio float32

	projection mgl32.Mat4
}

func NewCamera() *Camera {
	return &Camera{
		FOV:         DefaultFOV,
		NearPlane:   DefaultNearPlane,
		FarPlane:    DefaultFarPlane,
		AspectRatio: 1,
		projection:  mgl32.Ident4(),
	}
}

// Resize recomputes the projection for a width x height target. Zero
// dimensions are treated as 1, matching the render target.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.AspectRatio = float32(width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

func (c *Camera) View() mgl32.Mat4 { return mgl32.Ident4() }

// WorldViewProjection places the patch PatchDistance units into the screen.
func (c *Camera) WorldViewProjection() mgl32.Mat4 {
	world := mgl32.Translate3D(0, 0, -PatchDistance)
	return c.projection.Mul4(c.View()).Mul4(world)
}
