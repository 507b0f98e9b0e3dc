package filter

import (
	"math"
	"sync"

	"github.com/chewxy/math32"
)

// GaussianKernel generates a normalized 1D Gaussian kernel using radius as
// the standard deviation. The kernel has 2*ceil(3*radius)+1 taps, covering
// 99.7% of the distribution.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(radius * 3))
	kernel := make([]float32, halfSize*2+1)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels in normalization.
	twoSigmaSq := float32(2 * radius * radius)
	var sum float32
	for i := range kernel {
		x := float32(i - halfSize)
		kernel[i] = math32.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}

	inv := 1 / sum
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache caches Gaussian kernels keyed by radius quantized to 0.01px.
// Hosts blur every frame with the same radius.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(32)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius float64) []float32 {
	key := int(math.Round(radius * 100))

	c.mu.RLock()
	kernel, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return kernel
	}

	kernel = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		clear(c.cache)
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// len returns the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel returns a shared, read-only Gaussian kernel for radius.
func CachedGaussianKernel(radius float64) []float32 {
	return defaultKernelCache.get(radius)
}
