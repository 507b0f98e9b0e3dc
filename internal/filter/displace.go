package filter

import (
	"image"

	"github.com/chewxy/math32"
)

// DisplacementFilter shifts every pixel of the source by an offset read
// from a displacement map, as SVG feDisplacementMap does with
// xChannelSelector="R" and yChannelSelector="G":
//
//	dst(x, y) = src(x + Scale*(R(x,y)/255 - 0.5), y + Scale*(G(x,y)/255 - 0.5))
//
// Samples are bilinear and clamp to the source edge. When the map and the
// source differ in size the map is sampled nearest-neighbor.
type DisplacementFilter struct {
	// Map holds the displacement channels. It is read as straight (not
	// premultiplied) data; an opaque map is the common case.
	Map *image.RGBA

	// Scale is the displacement in source pixels for a full-range channel.
	Scale float32
}

// NewDisplacementFilter creates a displacement filter reading offsets from m.
func NewDisplacementFilter(m *image.RGBA, scale float32) *DisplacementFilter {
	return &DisplacementFilter{Map: m, Scale: scale}
}

// Apply displaces src into dst. A missing or empty map copies src.
func (f *DisplacementFilter) Apply(src, dst *image.RGBA) {
	if !sameBounds(src, dst) {
		return
	}
	if f.Map == nil || f.Map.Rect.Empty() || f.Scale == 0 {
		copyRGBA(src, dst)
		return
	}

	width := src.Rect.Dx()
	height := src.Rect.Dy()
	mapW := f.Map.Rect.Dx()
	mapH := f.Map.Rect.Dy()

	for y := range height {
		my := y * mapH / height
		mrow := f.Map.Pix[my*f.Map.Stride:]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]

		for x := range width {
			mi := (x * mapW / width) * 4
			dx := f.Scale * (float32(mrow[mi+0])/255 - 0.5)
			dy := f.Scale * (float32(mrow[mi+1])/255 - 0.5)

			r, g, b, a := sampleBilinear(src, float32(x)+dx, float32(y)+dy)
			o := x * 4
			out[o+0] = clampUint8(r)
			out[o+1] = clampUint8(g)
			out[o+2] = clampUint8(b)
			out[o+3] = clampUint8(a)
		}
	}
}

// sampleBilinear samples img at the pixel coordinate (fx, fy), where integer
// coordinates address pixel origins. Coordinates outside the image clamp to
// the nearest edge pixel.
func sampleBilinear(img *image.RGBA, fx, fy float32) (r, g, b, a float32) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	x0f := math32.Floor(fx)
	y0f := math32.Floor(fy)
	tx := fx - x0f
	ty := fy - y0f

	x0 := clampInt(int(x0f), 0, width-1)
	x1 := clampInt(int(x0f)+1, 0, width-1)
	y0 := clampInt(int(y0f), 0, height-1)
	y1 := clampInt(int(y0f)+1, 0, height-1)

	p00 := img.Pix[y0*img.Stride+x0*4:]
	p10 := img.Pix[y0*img.Stride+x1*4:]
	p01 := img.Pix[y1*img.Stride+x0*4:]
	p11 := img.Pix[y1*img.Stride+x1*4:]

	w00 := (1 - tx) * (1 - ty)
	w10 := tx * (1 - ty)
	w01 := (1 - tx) * ty
	w11 := tx * ty

	r = float32(p00[0])*w00 + float32(p10[0])*w10 + float32(p01[0])*w01 + float32(p11[0])*w11
	g = float32(p00[1])*w00 + float32(p10[1])*w10 + float32(p01[1])*w01 + float32(p11[1])*w11
	b = float32(p00[2])*w00 + float32(p10[2])*w10 + float32(p01[2])*w01 + float32(p11[2])*w11
	a = float32(p00[3])*w00 + float32(p10[3])*w10 + float32(p01[3])*w01 + float32(p11[3])*w11
	return r, g, b, a
}
