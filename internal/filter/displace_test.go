package filter

import (
	"image"
	"image/color"
	"testing"
)

// uniformMap creates a displacement map with constant R and G channels.
func uniformMap(w, h int, r, g uint8) *image.RGBA {
	return solidImage(w, h, color.RGBA{R: r, G: g, A: 255})
}

func TestDisplacementFilterShiftsHorizontally(t *testing.T) {
	tests := []struct {
		name  string
		r     uint8
		shift int
	}{
		{"full red pulls from the right", 255, 1},
		{"zero red pulls from the left", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := gradientImage(8, 4)
			dst := image.NewRGBA(src.Rect)

			// Scale 2 turns a channel offset of +-0.5 into exactly one pixel.
			NewDisplacementFilter(uniformMap(8, 4, tt.r, 255), 2).Apply(src, dst)

			for x := range 8 {
				sx := clampInt(x+tt.shift, 0, 7)
				want := src.RGBAAt(sx, 0)
				if got := dst.RGBAAt(x, 2); got != want {
					t.Errorf("dst(%d,2) = %+v, want %+v", x, got, want)
				}
			}
		})
	}
}

func TestDisplacementFilterShiftsVertically(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 6))
	for y := range 6 {
		for x := range 3 {
			src.SetRGBA(x, y, color.RGBA{G: uint8(20 * y), A: 255})
		}
	}
	dst := image.NewRGBA(src.Rect)

	// G=0 samples one row up. R=255 also moves right, but rows are uniform.
	NewDisplacementFilter(uniformMap(3, 6, 255, 0), 2).Apply(src, dst)

	for y := range 6 {
		want := src.RGBAAt(0, clampInt(y-1, 0, 5))
		if got := dst.RGBAAt(1, y); got != want {
			t.Errorf("dst(1,%d) = %+v, want %+v", y, got, want)
		}
	}
}

func TestDisplacementFilterInterpolates(t *testing.T) {
	src := gradientImage(4, 1)
	dst := image.NewRGBA(src.Rect)

	// Scale 1 with R=255 shifts by half a pixel.
	NewDisplacementFilter(uniformMap(4, 1, 255, 255), 1).Apply(src, dst)

	// Halfway between 10 and 20.
	if got := dst.RGBAAt(1, 0).R; got != 15 {
		t.Errorf("dst(1,0).R = %d, want 15", got)
	}
}

func TestDisplacementFilterScalesMap(t *testing.T) {
	src := gradientImage(8, 2)
	dst := image.NewRGBA(src.Rect)

	// A 2x1 map: left half pulls from the right, right half from the left.
	m := image.NewRGBA(image.Rect(0, 0, 2, 1))
	m.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, A: 255})
	m.SetRGBA(1, 0, color.RGBA{R: 0, G: 255, A: 255})

	NewDisplacementFilter(m, 2).Apply(src, dst)

	if got, want := dst.RGBAAt(1, 0), src.RGBAAt(2, 0); got != want {
		t.Errorf("dst(1,0) = %+v, want %+v", got, want)
	}
	if got, want := dst.RGBAAt(6, 1), src.RGBAAt(5, 0); got != want {
		t.Errorf("dst(6,1) = %+v, want %+v", got, want)
	}
}

func TestDisplacementFilterWithoutMapCopies(t *testing.T) {
	src := gradientImage(5, 3)

	for _, f := range []*DisplacementFilter{
		NewDisplacementFilter(nil, 10),
		NewDisplacementFilter(uniformMap(5, 3, 0, 0), 0),
	} {
		dst := image.NewRGBA(src.Rect)
		f.Apply(src, dst)
		for x := range 5 {
			if dst.RGBAAt(x, 1) != src.RGBAAt(x, 1) {
				t.Errorf("dst(%d,1) = %+v, want copy of source", x, dst.RGBAAt(x, 1))
			}
		}
	}
}

func BenchmarkDisplacementFilter(b *testing.B) {
	src := gradientImage(256, 256)
	dst := image.NewRGBA(src.Rect)
	f := NewDisplacementFilter(uniformMap(256, 256, 200, 60), 24)

	for range b.N {
		f.Apply(src, dst)
	}
}
