package glass

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// maxVortexRadius is the distance from the centre to a corner in
// normalized surface coordinates.
const maxVortexRadius = math.Sqrt2 / 2

// centre of the normalized surface.
var vortexCentre = r2.Vec{X: 0.5, Y: 0.5}

// vortex turns influence into pixel displacement for one synthesis call.
type vortex struct {
	w, h  float64
	swirl Swirl

	// strength folds intensity/10 into a single factor.
	strength float64

	// displacementFactor is the size-adaptive blend weight of the swirled point.
	displacementFactor float64
}

// newVortex expects swirl to be clamped already.
func newVortex(size Size, swirl Swirl) vortex {
	strength := swirl.Intensity / 10
	base := math.Max(size.minSide()/100*0.05, 0.01)
	return vortex{
		w:                  float64(size.Width),
		h:                  float64(size.Height),
		swirl:              swirl,
		strength:           strength,
		displacementFactor: base * strength,
	}
}

// at returns the displacement in pixels of pixel (x, y) for the given influence.
func (v *vortex) at(x, y int, influence float64) (dx, dy float64) {
	u := float64(x) / v.w
	w := float64(y) / v.h
	p := r2.Vec{X: u - 0.5, Y: w - 0.5}

	angle := math.Atan2(p.Y, p.X)
	radius := r2.Norm(p)
	normRadius := math.Min(radius/maxVortexRadius, 1)

	scaledRadius := normRadius / v.swirl.Scale
	effectiveRadius := normRadius * v.swirl.Radius
	swirlStrength := influence * scaledRadius * effectiveRadius * v.strength

	finalAngle := angle + swirlStrength*2*math.Pi
	newRadius := radius * (1 + swirlStrength*0.1*math.Sin(angle*3))
	sin, cos := math.Sincos(finalAngle)
	swirled := r2.Vec{X: cos * newRadius, Y: sin * newRadius}

	// The 0.3 damping keeps part of the undistorted position even at full
	// influence.
	k := v.displacementFactor * influence
	pos := r2.Add(r2.Add(r2.Scale(k, swirled), r2.Scale(1-k*0.3, p)), vortexCentre)

	return (pos.X - u) * v.w, (pos.Y - w) * v.h
}

// DisplacementAt returns the raw displacement in pixels of pixel (x, y) for
// a given influence. The swirl is clamped to its documented ranges first.
// The result is deterministic and, up to rounding, zero where influence is zero.
func DisplacementAt(x, y int, size Size, swirl Swirl, influence float64) (dx, dy float64) {
	if size.Empty() {
		return 0, 0
	}
	v := newVortex(size, swirl.clamped())
	return v.at(x, y, influence)
}
