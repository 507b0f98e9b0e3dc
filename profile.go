package glass

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrRowOutOfRange is returned by Profile for rows outside the surface.
var ErrRowOutOfRange = errors.New("glass: profile row out of range")

// ProfileSample describes one pixel of a scanline profile.
type ProfileSample struct {
	X         int     `csv:"x"`
	Influence float64 `csv:"influence"`
	DX        float64 `csv:"dx"`
	DY        float64 `csv:"dy"`
	R         uint8   `csv:"r"`
	G         uint8   `csv:"g"`
}

// ProfileSummary aggregates a scanline profile.
type ProfileSummary struct {
	MeanInfluence   float64
	MaxInfluence    float64
	MaxDisplacement float64
	StdDevDX        float64
	StdDevDY        float64
}

// Profile is the influence and displacement along one row of a surface,
// together with the encoded map the row belongs to.
type Profile struct {
	Row     int
	Samples []ProfileSample
	Summary ProfileSummary
	Map     *DisplacementMap
}

// Profile synthesizes req and samples row y of the result. It is meant for
// tuning parameters: the samples expose the raw influence and displacement
// that the encoded map quantizes.
func (s *Synthesizer) Profile(req Request, y int) (*Profile, error) {
	m, err := s.Synthesize(req)
	if err != nil {
		return nil, err
	}
	if y < 0 || y >= m.Height {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrRowOutOfRange, y, m.Height)
	}

	swirl := req.Swirl.clamped()
	infl := newInfluenceField(req.Size, req.Shape, swirl, req.Region, s.opts.shapeClip)
	vx := newVortex(req.Size, swirl)

	n := req.Size.Width
	samples := make([]ProfileSample, n)
	influence := make([]float64, n)
	dxs := make([]float64, n)
	dys := make([]float64, n)
	maxDisp := 0.0
	for x := range n {
		i := infl.at(x, y)
		dx, dy := vx.at(x, y, i)
		r, g := m.Channels(x, y)
		samples[x] = ProfileSample{X: x, Influence: i, DX: dx, DY: dy, R: r, G: g}
		influence[x], dxs[x], dys[x] = i, dx, dy
		maxDisp = math.Max(maxDisp, math.Max(math.Abs(dx), math.Abs(dy)))
	}

	return &Profile{
		Row:     y,
		Samples: samples,
		Summary: ProfileSummary{
			MeanInfluence:   stat.Mean(influence, nil),
			MaxInfluence:    floats.Max(influence),
			MaxDisplacement: maxDisp,
			StdDevDX:        stdDev(dxs),
			StdDevDY:        stdDev(dys),
		},
		Map: m,
	}, nil
}

// stdDev is the population standard deviation; single samples yield 0.
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	_, std := stat.PopMeanStdDev(xs, nil)
	return std
}
