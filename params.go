package glass

import "math"

// Lower bounds applied to swirl parameters before use.
const (
	minSwirlScale  = 0.1
	minSwirlRadius = 0.1
)

// Size is the size of a surface in device pixels. Callers scale CSS sizes by
// the pixel density before building a Size.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether the surface has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Pixels returns the number of pixels covered by the surface.
func (s Size) Pixels() int {
	if s.Empty() {
		return 0
	}
	return s.Width * s.Height
}

// minSide returns the shorter side as a float.
func (s Size) minSide() float64 {
	return float64(min(s.Width, s.Height))
}

// Shape controls the rounded rectangle and the nominal width of the edge band.
type Shape struct {
	// BorderRadius is the corner radius of the rounded rectangle in pixels.
	BorderRadius float64

	// EdgeThickness is the nominal width of the swirl band in pixels.
	// Surfaces shorter than 100px widen the band proportionally.
	EdgeThickness float64
}

// DefaultShape returns the shape used when a host supplies none.
func DefaultShape() Shape {
	return Shape{
		BorderRadius:  24,
		EdgeThickness: 12,
	}
}

// Swirl controls the vortex applied along the surface edges.
type Swirl struct {
	// Intensity is the vortex strength, typically 0..20.
	Intensity float64

	// Scale zooms the swirl pattern. Values below 0.1 are raised to 0.1.
	Scale float64

	// Radius controls how far the swirl extends. Values below 0.1 are raised to 0.1.
	Radius float64

	// Offset moves the band inwards as a fraction (0..1) of half the shorter side.
	Offset float64
}

// DefaultSwirl returns the swirl used when a host supplies none.
func DefaultSwirl() Swirl {
	return Swirl{
		Intensity: 8,
		Scale:     1,
		Radius:    1,
		Offset:    0,
	}
}

// clamped returns s with every field inside its documented range.
func (s Swirl) clamped() Swirl {
	return Swirl{
		Intensity: math.Max(s.Intensity, 0),
		Scale:     math.Max(s.Scale, minSwirlScale),
		Radius:    math.Max(s.Radius, minSwirlRadius),
		Offset:    clamp(s.Offset, 0, 1),
	}
}

// Request is the complete input of one synthesis call. Requests are
// comparable, so hosts can memoize on unchanged inputs.
type Request struct {
	Size Size

	// PixelDensity is the device pixel ratio Size was computed with.
	// Non-positive values are treated as 1.
	PixelDensity float64

	Shape  Shape
	Swirl  Swirl
	Region Region
}

// DefaultRequest returns a request for size with default parameters.
func DefaultRequest(size Size) Request {
	return Request{
		Size:         size,
		PixelDensity: 1,
		Shape:        DefaultShape(),
		Swirl:        DefaultSwirl(),
		Region:       AllCorners(),
	}
}

// density returns the pixel density with the non-positive fallback applied.
func (r Request) density() float64 {
	if r.PixelDensity > 0 && !math.IsInf(r.PixelDensity, 0) {
		return r.PixelDensity
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
