package scene

import "tessellation-demo/core"

const (
	DefaultMinSegments = 1
	DefaultMaxSegments = 50
)

var (
	// ColorSegmentsLow is shown once the count has been pushed down to its minimum.
	ColorSegmentsLow = core.ColorGreen
	// ColorSegmentsHigh is shown once the count has been pushed up to its maximum.
	ColorSegmentsHigh = core.ColorBlue
)

// Segments is the number of line segments the tessellator splits the patch
// into, together with the colour the curve is drawn in.
//
// The colour only changes when the count hits one of its bounds; stepping
// back inside the range keeps whatever colour was last set.
type Segments struct {
	count    int
	min, max int
	low      core.Color
	high     core.Color
	color    core.Color
}

// NewSegments returns a count starting at start, clamped to [min, max],
// drawn in the low colour.
func NewSegments(start, min, max int, low, high core.Color) *Segments {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	s := &Segments{min: min, max: max, low: low, high: high, color: low}
	s.count = s.clamp(start)
	return s
}

// DefaultSegments matches the demo defaults: 1..50 starting at 1.
func DefaultSegments() *Segments {
	return NewSegments(DefaultMinSegments, DefaultMinSegments, DefaultMaxSegments,
		ColorSegmentsLow, ColorSegmentsHigh)
}

func (s *Segments) Count() int        { return s.count }
func (s *Segments) Min() int          { return s.min }
func (s *Segments) Max() int          { return s.max }
func (s *Segments) Color() core.Color { return s.color }

// Increase adds one segment. Reaching the maximum switches to the high colour.
func (s *Segments) Increase() {
	if s.count < s.max {
		s.count++
	}
	if s.count >= s.max {
		s.count = s.max
		s.color = s.high
	}
}

// Decrease removes one segment. Reaching the minimum switches to the low colour.
// The bound is checked before stepping so the count never leaves the range.
func (s *Segments) Decrease() {
	if s.count > s.min {
		s.count--
	}
	if s.count <= s.min {
		s.count = s.min
		s.color = s.low
	}
}

func (s *Segments) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}
