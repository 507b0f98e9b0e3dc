package filter

import (
	"image"
	"sync"
)

// BlurFilter applies separable Gaussian blur to an image.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*(rx+ry)) complexity instead of O(w*h*rx*ry).
type BlurFilter struct {
	// RadiusX is the horizontal blur radius (standard deviation) in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius (standard deviation) in pixels.
	RadiusY float64
}

// NewBlurFilter creates a new blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radius,
		RadiusY: radius,
	}
}

// Apply blurs src into dst. Pixels beyond the image edge repeat the edge
// pixel, so a blurred backdrop keeps its brightness at the glass border.
func (f *BlurFilter) Apply(src, dst *image.RGBA) {
	if !sameBounds(src, dst) {
		return
	}
	if f.RadiusX <= 0 && f.RadiusY <= 0 {
		copyRGBA(src, dst)
		return
	}

	width := src.Rect.Dx()
	height := src.Rect.Dy()

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	// Pass 1: horizontal (src -> temp)
	blurHorizontal(src, temp, width, height, CachedGaussianKernel(f.RadiusX))

	// Pass 2: vertical (temp -> dst)
	blurVertical(temp, dst, width, height, CachedGaussianKernel(f.RadiusY))
}

// blurHorizontal convolves each row of src with kernel into temp.
// A single-element kernel degenerates to a copy.
func blurHorizontal(src *image.RGBA, temp []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2

	for y := range height {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]
		for x := range width {
			var r, g, b, a float32
			for k, weight := range kernel {
				i := clampInt(x+k-half, 0, width-1) * 4
				r += float32(row[i+0]) * weight
				g += float32(row[i+1]) * weight
				b += float32(row[i+2]) * weight
				a += float32(row[i+3]) * weight
			}

			t := (y*width + x) * 4
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// blurVertical convolves each column of temp with kernel into dst.
func blurVertical(temp []float32, dst *image.RGBA, width, height int, kernel []float32) {
	half := len(kernel) / 2

	for y := range height {
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		for x := range width {
			var r, g, b, a float32
			for k, weight := range kernel {
				t := (clampInt(y+k-half, 0, height-1)*width + x) * 4
				r += temp[t+0] * weight
				g += temp[t+1] * weight
				b += temp[t+2] * weight
				a += temp[t+3] * weight
			}

			o := x * 4
			out[o+0] = clampUint8(r)
			out[o+1] = clampUint8(g)
			out[o+2] = clampUint8(b)
			out[o+3] = clampUint8(a)
		}
	}
}

// copyRGBA copies the pixels of src into dst row by row.
func copyRGBA(src, dst *image.RGBA) {
	n := src.Rect.Dx() * 4
	for y := range src.Rect.Dy() {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+n], src.Pix[y*src.Stride:y*src.Stride+n])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 512*512*4)}
	},
}

// getTempBuffer retrieves a buffer of at least width*height*4 elements.
// Every element is overwritten by blurHorizontal, so it is not cleared.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 { // 64MB max
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
