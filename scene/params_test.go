package scene

import (
	"testing"
	"unsafe"
)

func TestParamBlockSizes(t *testing.T) {
	// std140 sizes of the GLSL blocks.
	if got := unsafe.Sizeof(HullParams{}); got != 16 {
		t.Errorf("HullParams: expected 16 bytes, got %d", got)
	}
	if got := unsafe.Sizeof(DomainParams{}); got != 64 {
		t.Errorf("DomainParams: expected 64 bytes, got %d", got)
	}
	if got := unsafe.Sizeof(PixelParams{}); got != 16 {
		t.Errorf("PixelParams: expected 16 bytes, got %d", got)
	}
}

func TestNewFrame(t *testing.T) {
	cam := NewCamera()
	cam.Resize(800, 600)
	seg := DefaultSegments()
	for i := 0; i < 6; i++ {
		seg.Increase()
	}

	f := NewFrame(cam, seg)

	if f.Hull.HullConstantFunctionParam != [4]float32{1, 7, 0, 0} {
		t.Errorf("unexpected hull params %v", f.Hull.HullConstantFunctionParam)
	}
	if f.Domain.WorldViewProjection != cam.WorldViewProjection() {
		t.Error("domain params do not carry the camera's WVP")
	}
	if f.Pixel.LineColor != ColorSegmentsLow.Vec4() {
		t.Errorf("unexpected line colour %v", f.Pixel.LineColor)
	}
}

func TestNewFrameHighColour(t *testing.T) {
	cam := NewCamera()
	seg := DefaultSegments()
	for i := 0; i < 60; i++ {
		seg.Increase()
	}

	f := NewFrame(cam, seg)
	if f.Hull.HullConstantFunctionParam[1] != 50 {
		t.Errorf("expected 50 segments, got %v", f.Hull.HullConstantFunctionParam[1])
	}
	if f.Pixel.LineColor != [4]float32{0, 0, 1, 1} {
		t.Errorf("expected blue, got %v", f.Pixel.LineColor)
	}
}
