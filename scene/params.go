package scene

import "github.com/go-gl/mathgl/mgl32"

// The parameter blocks below mirror the std140 uniform blocks declared in
// the shaders. Field order and sizes must not change without the GLSL.

// HullParams feeds the tessellation control stage.
// X is the number of isolines, Y the number of segments per line.
type HullParams struct {
	HullConstantFunctionParam [4]float32
}

// DomainParams feeds the tessellation evaluation stage.
type DomainParams struct {
	WorldViewProjection mgl32.Mat4
}

// PixelParams feeds the fragment stage.
type PixelParams struct {
	LineColor [4]float32
}

// LineCount is the number of isolines the patch is drawn as.
const LineCount = 1

// Frame is everything that changes from one frame to the next.
type Frame struct {
	Hull   HullParams
	Domain DomainParams
	Pixel  PixelParams
}

// NewFrame packs the current render state into the three blocks.
func NewFrame(cam *Camera, seg *Segments) Frame {
	return Frame{
		Hull: HullParams{
			HullConstantFunctionParam: [4]float32{LineCount, float32(seg.Count()), 0, 0},
		},
		Domain: DomainParams{WorldViewProjection: cam.WorldViewProjection()},
		Pixel:  PixelParams{LineColor: seg.Color().Vec4()},
	}
}
