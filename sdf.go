package glass

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels
// when an SDF value is turned into coverage.
const sdfAntialiasWidth = 0.7

// RoundedRectSDF returns the signed distance from (px, py) to the rounded
// rectangle filling a surface of the given size. Negative values are inside.
//
// The radius is clamped to [0, min(W,H)/2], matching how browsers resolve
// an oversized border-radius.
func RoundedRectSDF(px, py float64, size Size, radius float64) float64 {
	halfW := float64(size.Width) / 2
	halfH := float64(size.Height) / 2
	r := clamp(radius, 0, math.Min(halfW, halfH))
	return sdfRRect(px, py, halfW, halfH, halfW, halfH, r)
}

// RoundedRectCoverage returns the anti-aliased coverage in [0, 1] of the
// rounded rectangle at pixel centre (px, py).
func RoundedRectCoverage(px, py float64, size Size, radius float64) float64 {
	return smoothstepCoverage(RoundedRectSDF(px, py, size, radius))
}

// sdfRRect computes the signed distance from a point to a rounded rectangle
// centred at (cx, cy). Negative values are inside, positive values are outside.
func sdfRRect(px, py, cx, cy, halfW, halfH, cornerRadius float64) float64 {
	// Fold into the first quadrant.
	dx := math.Abs(px-cx) - halfW + cornerRadius
	dy := math.Abs(py-cy) - halfH + cornerRadius

	// Past the straight edges max(dx, dy) is the distance; in the corner
	// region it is the distance to the corner circle.
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - cornerRadius
}

// smoothstep is the cubic Hermite interpolation between edge0 and edge1.
// It returns 0 for x <= edge0 and 1 for x >= edge1. Reversed edges are
// allowed and mirror the curve.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// smoothstepCoverage converts a signed distance to anti-aliased coverage.
//
// sdf <= -afwidth => 1.0 (fully inside)
// sdf >= +afwidth => 0.0 (fully outside)
func smoothstepCoverage(sdf float64) float64 {
	return 1 - smoothstep(-sdfAntialiasWidth, sdfAntialiasWidth, sdf)
}
