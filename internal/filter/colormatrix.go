package filter

import (
	"image"
	"image/color"
)

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// ColorMatrixFilter applies a 4x5 color transformation matrix to an image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias values in [0, 255] units. The matrix works
// on straight-alpha colors; pixels are un-premultiplied before and
// re-premultiplied after the transform.
type ColorMatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	Matrix [20]float32
}

// NewColorMatrixFilter creates a color matrix filter with the given matrix.
func NewColorMatrixFilter(matrix [20]float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: matrix}
}

// NewBrightnessFilter scales RGB by factor.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func NewBrightnessFilter(factor float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			factor, 0, 0, 0, 0,
			0, factor, 0, 0, 0,
			0, 0, factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewSaturationFilter creates a filter that adjusts color saturation, as
// SVG feColorMatrix type="saturate" does.
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func NewSaturationFilter(factor float32) *ColorMatrixFilter {
	// Blend between luminance (0) and identity (1).
	inv := 1 - factor

	return &ColorMatrixFilter{
		Matrix: [20]float32{
			lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
			lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
			lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewColorTintFilter blends every pixel toward tint by the tint's alpha.
func NewColorTintFilter(tint color.NRGBA) *ColorMatrixFilter {
	f := float32(tint.A) / 255
	inv := 1 - f

	return &ColorMatrixFilter{
		Matrix: [20]float32{
			inv, 0, 0, 0, float32(tint.R) * f,
			0, inv, 0, 0, float32(tint.G) * f,
			0, 0, inv, 0, float32(tint.B) * f,
			0, 0, 0, 1, 0,
		},
	}
}

// Apply applies the color matrix transformation to src, writing dst.
func (f *ColorMatrixFilter) Apply(src, dst *image.RGBA) {
	if !sameBounds(src, dst) {
		return
	}

	width := src.Rect.Dx()
	m := &f.Matrix

	for y := range src.Rect.Dy() {
		in := src.Pix[y*src.Stride : y*src.Stride+width*4]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]

		for i := 0; i < len(in); i += 4 {
			a := float32(in[i+3])

			var r, g, b float32
			if a > 0 {
				r = float32(in[i+0]) * 255 / a
				g = float32(in[i+1]) * 255 / a
				b = float32(in[i+2]) * 255 / a
			}

			newR := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
			newG := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
			newB := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
			newA := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

			newA = min(max(newA, 0), 255)
			factor := newA / 255
			// Premultiplied channels may not exceed alpha.
			out[i+0] = clampUint8(min(newR*factor, newA))
			out[i+1] = clampUint8(min(newG*factor, newA))
			out[i+2] = clampUint8(min(newB*factor, newA))
			out[i+3] = clampUint8(newA)
		}
	}
}
