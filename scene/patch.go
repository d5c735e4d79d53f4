package scene

import "unsafe"

// ControlPoint is a single 2D patch vertex; it is the only vertex attribute.
type ControlPoint struct {
	X, Y float32
}

// ControlPointStride is the byte distance between consecutive points.
const ControlPointStride = int32(unsafe.Sizeof(ControlPoint{}))

// Patch is the four control points of the cubic curve the tessellator
// subdivides.
type Patch [4]ControlPoint

func DefaultPatch() Patch {
	return Patch{
		{-1.0, -1.0},
		{-0.5, 1.0},
		{0.5, -1.0},
		{1.0, 1.0},
	}
}

func (p *Patch) Len() int { return len(p) }

// SizeBytes is the upload size of the whole patch.
func (p *Patch) SizeBytes() int { return len(p) * int(ControlPointStride) }

// Evaluate returns the point on the cubic Bézier at u in [0, 1]. It is the
// same curve the evaluation stage emits.
func (p *Patch) Evaluate(u float32) ControlPoint {
	v := 1 - u
	b0 := v * v * v
	b1 := 3 * u * v * v
	b2 := 3 * u * u * v
	b3 := u * u * u
	return ControlPoint{
		X: b0*p[0].X + b1*p[1].X + b2*p[2].X + b3*p[3].X,
		Y: b0*p[0].Y + b1*p[1].Y + b2*p[2].Y + b3*p[3].Y,
	}
}
