package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestCameraResizeAspectRatio(t *testing.T) {
	c := NewCamera()

	c.Resize(800, 600)
	if !approxEqual(c.AspectRatio, 800.0/600.0) {
		t.Errorf("expected aspect %v, got %v", 800.0/600.0, c.AspectRatio)
	}
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	if !c.Projection().ApproxEqual(want) {
		t.Errorf("projection mismatch for 800x600:\n%v\n%v", c.Projection(), want)
	}

	c.Resize(1024, 768)
	want = mgl32.Perspective(mgl32.DegToRad(45), 1024.0/768.0, 0.1, 100)
	if !c.Projection().ApproxEqual(want) {
		t.Errorf("projection mismatch for 1024x768:\n%v\n%v", c.Projection(), want)
	}
}

func TestCameraResizeZeroHeight(t *testing.T) {
	c := NewCamera()
	c.Resize(640, 0)

	if !approxEqual(c.AspectRatio, 640) {
		t.Errorf("expected height to be treated as 1, aspect %v", c.AspectRatio)
	}
	for i, v := range c.Projection() {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("projection element %d is not finite: %v", i, v)
		}
	}
}

func TestCameraResizeZeroSizeStaysFinite(t *testing.T) {
	tests := []struct {
		width, height int
		aspect        float32
	}{
		{0, 0, 1},
		{0, 600, 1.0 / 600},
		{-5, 480, 1.0 / 480},
	}
	for _, tt := range tests {
		c := NewCamera()
		c.Resize(tt.width, tt.height)
		if !approxEqual(c.AspectRatio, tt.aspect) {
			t.Errorf("Resize(%d, %d): expected aspect %v, got %v", tt.width, tt.height, tt.aspect, c.AspectRatio)
		}
		for i, v := range c.Projection() {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Errorf("Resize(%d, %d): projection element %d is not finite: %v", tt.width, tt.height, i, v)
			}
		}
	}
}

func TestCameraPatchIsInsideFrustum(t *testing.T) {
	c := NewCamera()
	c.Resize(800, 600)
	wvp := c.WorldViewProjection()

	p := DefaultPatch()
	for i := 0; i <= 10; i++ {
		pt := p.Evaluate(float32(i) / 10)
		clip := wvp.Mul4x1(mgl32.Vec4{pt.X, pt.Y, 0, 1})
		ndc := clip.Vec3().Mul(1 / clip.W())
		for axis := 0; axis < 3; axis++ {
			if ndc[axis] < -1 || ndc[axis] > 1 {
				t.Errorf("point %v projects outside the view volume: %v", pt, ndc)
			}
		}
	}
}

func TestPatchEvaluateEndpoints(t *testing.T) {
	p := DefaultPatch()
	if got := p.Evaluate(0); got != p[0] {
		t.Errorf("Evaluate(0): expected %v, got %v", p[0], got)
	}
	if got := p.Evaluate(1); got != p[3] {
		t.Errorf("Evaluate(1): expected %v, got %v", p[3], got)
	}
	if p.SizeBytes() != 32 {
		t.Errorf("expected 32 bytes for 4 vec2 points, got %d", p.SizeBytes())
	}
}
