package filter

import (
	"image"
	"image/color"
	"strconv"
)

// Test helper functions shared across filter tests.

// solidImage creates an image filled with the given premultiplied color.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// gradientImage creates an opaque image whose red channel is 10*x.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: uint8(10 * x), A: 255})
		}
	}
	return img
}

// channelDiff returns the largest per-channel difference between a and b.
func channelDiff(a, b color.RGBA) int {
	d := 0
	for _, p := range [][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}, {a.A, b.A}} {
		v := int(p[0]) - int(p[1])
		if v < 0 {
			v = -v
		}
		d = max(d, v)
	}
	return d
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
