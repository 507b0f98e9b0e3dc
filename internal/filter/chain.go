package filter

import "image"

// Filter transforms src into dst. Implementations require src and dst to
// have the same bounds; dst must not alias src.
type Filter interface {
	Apply(src, dst *image.RGBA)
}

// Chain applies filters in order, ping-ponging through a scratch image.
type Chain []Filter

// Apply runs every filter of the chain. An empty chain copies src to dst.
func (c Chain) Apply(src, dst *image.RGBA) {
	if len(c) == 0 {
		if sameBounds(src, dst) {
			copyRGBA(src, dst)
		}
		return
	}

	cur := src
	var scratch *image.RGBA
	for i, f := range c {
		out := dst
		// Route intermediate results so that the last filter writes dst and
		// no filter reads the image it writes.
		if (len(c)-1-i)%2 == 1 {
			if scratch == nil {
				scratch = image.NewRGBA(src.Rect)
			}
			out = scratch
		}
		f.Apply(cur, out)
		cur = out
	}
}

// sameBounds reports whether src and dst can be processed together.
func sameBounds(src, dst *image.RGBA) bool {
	return src != nil && dst != nil && src.Rect.Eq(dst.Rect) && !src.Rect.Empty()
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
