// Package preview composites a displacement map over a backdrop image the
// way a browser renders a liquid glass surface: the backdrop is displaced,
// frosted, saturated and clipped to the surface's rounded rectangle.
//
// It is a CPU reference for inspecting maps outside a browser, not a
// real-time renderer.
package preview

import (
	"errors"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/internal/filter"
)

var (
	// ErrNoBackdrop is returned when Render is called without a backdrop.
	ErrNoBackdrop = errors.New("preview: nil or empty backdrop")

	// ErrNoMap is returned when Render is called without a displacement map.
	ErrNoMap = errors.New("preview: nil or empty displacement map")
)

// Options controls how the glass surface is composited.
// Lengths are in CSS pixels and are multiplied by PixelDensity.
type Options struct {
	// Blur is the backdrop blur radius (standard deviation).
	Blur float64

	// Brightness scales the backdrop colors; 0 and 1 leave them unchanged.
	Brightness float64

	// Saturation is the backdrop saturation factor; 1 leaves colors unchanged.
	Saturation float64

	// Tint is blended over the backdrop by its alpha. The zero value disables it.
	Tint color.NRGBA

	// BorderRadius is the corner radius of the clipping rounded rectangle.
	BorderRadius float64

	// PixelDensity is the ratio of map pixels to CSS pixels.
	// Values <= 0 are treated as 1.
	PixelDensity float64
}

// DefaultOptions returns the options of a typical frosted glass panel.
func DefaultOptions() Options {
	return Options{
		Blur:         2,
		Brightness:   1.05,
		Saturation:   1.6,
		Tint:         color.NRGBA{R: 255, G: 255, B: 255, A: 24},
		BorderRadius: glass.DefaultShape().BorderRadius,
		PixelDensity: 1,
	}
}

func (o Options) density() float64 {
	if o.PixelDensity <= 0 {
		return 1
	}
	return o.PixelDensity
}

// Filters returns the filter chain applied to the scaled backdrop, in order:
// displacement, blur, brightness, saturation, tint.
func (o Options) Filters(m *glass.DisplacementMap) filter.Chain {
	d := o.density()
	chain := filter.Chain{
		filter.NewDisplacementFilter(m.ToImage(), float32(m.FilterScale*d)),
	}
	if o.Blur > 0 {
		chain = append(chain, filter.NewBlurFilter(o.Blur*d))
	}
	if o.Brightness > 0 && o.Brightness != 1 {
		chain = append(chain, filter.NewBrightnessFilter(float32(o.Brightness)))
	}
	if o.Saturation > 0 && o.Saturation != 1 {
		chain = append(chain, filter.NewSaturationFilter(float32(o.Saturation)))
	}
	if o.Tint.A > 0 {
		chain = append(chain, filter.NewColorTintFilter(o.Tint))
	}
	return chain
}

// Render composites m over backdrop and returns an image of the map's size.
// The backdrop is scaled to cover the surface before filtering. Pixels
// outside the rounded rectangle are transparent.
func Render(backdrop image.Image, m *glass.DisplacementMap, opts Options) (*image.RGBA, error) {
	if backdrop == nil || backdrop.Bounds().Empty() {
		return nil, ErrNoBackdrop
	}
	if m == nil || m.Size().Empty() {
		return nil, ErrNoMap
	}

	rect := m.Bounds()
	scaled := image.NewRGBA(rect)
	Scale(scaled, backdrop)

	out := image.NewRGBA(rect)
	opts.Filters(m).Apply(scaled, out)

	clip(out, m.Size(), opts.BorderRadius*opts.density())

	glass.Logger().Debug("preview: rendered",
		"width", rect.Dx(),
		"height", rect.Dy(),
		"filterScale", m.FilterScale,
	)
	return out, nil
}

// Scale resamples src to cover dst entirely.
func Scale(dst *image.RGBA, src image.Image) {
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// clip multiplies every pixel by the rounded rectangle coverage.
func clip(img *image.RGBA, size glass.Size, radius float64) {
	for y := range size.Height {
		row := img.Pix[y*img.Stride : y*img.Stride+size.Width*4]
		for x := range size.Width {
			cov := glass.RoundedRectCoverage(float64(x)+0.5, float64(y)+0.5, size, radius)
			if cov >= 1 {
				continue
			}
			p := row[x*4 : x*4+4]
			for i := range p {
				p[i] = uint8(float64(p[i])*cov + 0.5)
			}
		}
	}
}
