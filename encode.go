package glass

import (
	"fmt"
	"math"

	"github.com/gogpu/glass/internal/pool"
)

// bytesPerPixel of an encoded map (R, G, B, A).
const bytesPerPixel = 4

// displacementScale turns the largest absolute displacement of a field into
// the normalization divisor. Halving lets strong displacements saturate the
// channels; the floor of 1 keeps tiny fields visible and avoids division by
// zero.
func displacementScale(maxAbs float64) float64 {
	return math.Max(maxAbs*0.5, 1)
}

// filterScale converts the normalization divisor into the scale attribute
// of the consuming displacement filter, in CSS pixels.
func filterScale(scale, density float64) float64 {
	return math.Max(scale/density, 1)
}

// fieldMax reduces the per-row maxima of a completed displacement pass.
func fieldMax(planes *pool.Planes) float64 {
	m := 0.0
	for _, v := range planes.RowMax {
		m = math.Max(m, v)
	}
	return m
}

// encodeChannel maps a displacement to a byte: -scale → 0, 0 → 128, +scale → 255.
func encodeChannel(v, scale float64) uint8 {
	c := clamp(v/scale*0.5+0.5, 0, 1)
	return uint8(math.Round(c * 255))
}

// checkBuffer verifies dst can hold an encoded width×height map.
func checkBuffer(dst []byte, width, height int) error {
	if want := width * height * bytesPerPixel; len(dst) != want {
		return fmt.Errorf("%w: have %d bytes, want %d for %dx%d",
			ErrBufferSize, len(dst), want, width, height)
	}
	return nil
}

// encodeRows writes rows [y0, y1) of planes into dst.
func encodeRows(planes *pool.Planes, dst []byte, scale float64, y0, y1 int) {
	for i := y0 * planes.Width; i < y1*planes.Width; i++ {
		o := i * bytesPerPixel
		dst[o+0] = encodeChannel(planes.DX[i], scale)
		dst[o+1] = encodeChannel(planes.DY[i], scale)
		dst[o+2] = 0
		dst[o+3] = 255
	}
}
