package glass

import "math"

// Size thresholds below which the edge band widens proportionally, because a
// fixed thickness disappears on button-sized surfaces.
const (
	smallSurface  = 60
	mediumSurface = 100

	// minEdgeThreshold is the narrowest band, in pixels, ever used.
	minEdgeThreshold = 2
)

// AdaptiveThreshold returns the width in pixels of the edge band over which
// influence falls from 1 to 0 for a surface of the given size.
//
//   - shorter side < 60px: min(side*0.8, side/2)
//   - shorter side < 100px: min(side*0.6, side/2)
//   - otherwise: min(EdgeThickness, side*0.4, side/2)
//
// The result is clamped to [1, side/2] and finally raised to at least 2px.
func AdaptiveThreshold(size Size, shape Shape) float64 {
	side := size.minSide()
	half := side / 2

	var t float64
	switch {
	case side < smallSurface:
		t = math.Min(side*0.8, half)
	case side < mediumSurface:
		t = math.Min(side*0.6, half)
	default:
		t = math.Min(math.Min(shape.EdgeThickness, side*0.4), half)
	}
	t = math.Min(math.Max(t, 1), half)
	return math.Max(t, minEdgeThreshold)
}

// edgeFalloff maps a distance from an edge to influence: 1 at the edge,
// easing to 0 at threshold. Negative distances lie inside the offset gap and
// contribute nothing.
func edgeFalloff(d, threshold float64) float64 {
	if d < 0 {
		return 0
	}
	return smoothstep(threshold, 0, d)
}

// influenceField evaluates per-pixel influence for one synthesis call.
// Everything that does not depend on the pixel is resolved up front.
type influenceField struct {
	size      Size
	w, h      float64
	threshold float64
	offset    float64
	region    Region

	// clip masks influence to the rounded rectangle when set.
	clip   bool
	radius float64
}

func newInfluenceField(size Size, shape Shape, swirl Swirl, region Region, clip bool) influenceField {
	return influenceField{
		size:      size,
		w:         float64(size.Width),
		h:         float64(size.Height),
		threshold: AdaptiveThreshold(size, shape),
		offset:    swirl.Offset * size.minSide() / 2,
		region:    region,
		clip:      clip,
		radius:    shape.BorderRadius,
	}
}

// at returns the influence in [0, 1] at pixel (x, y).
func (f *influenceField) at(x, y int) float64 {
	px := float64(x) + 0.5
	py := float64(y) + 0.5

	if !f.region.contains(px, py, f.size) {
		return 0
	}
	if f.clip && RoundedRectSDF(px, py, f.size, f.radius) > 0 {
		return 0
	}

	// Straight-edge distances, not the rounded SDF: the band follows the
	// physical edges regardless of corner rounding.
	infl := edgeFalloff(px-f.offset, f.threshold)
	infl = math.Max(infl, edgeFalloff(f.w-px-f.offset, f.threshold))
	infl = math.Max(infl, edgeFalloff(py-f.offset, f.threshold))
	infl = math.Max(infl, edgeFalloff(f.h-py-f.offset, f.threshold))
	return infl
}

// EvaluateInfluence returns how strongly the swirl applies at pixel (x, y),
// in [0, 1]. Influence is highest on the surface edges, eases to zero over
// AdaptiveThreshold pixels, starts swirl.Offset*min(W,H)/2 pixels inside the
// edges, and is zero outside the selected region.
func EvaluateInfluence(x, y int, size Size, shape Shape, swirl Swirl, region Region) float64 {
	if size.Empty() {
		return 0
	}
	f := newInfluenceField(size, shape, swirl.clamped(), region, false)
	return f.at(x, y)
}
