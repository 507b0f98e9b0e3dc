// Package pool recycles the float planes that hold an intermediate
// displacement field between the displacement and encoding passes.
package pool

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidSize is returned by NewPlanes for non-positive dimensions.
var ErrInvalidSize = errors.New("pool: invalid plane size")

// Planes holds a width×height displacement field as two row-major planes
// plus the per-row maximum absolute displacement.
type Planes struct {
	Width  int
	Height int

	DX []float64
	DY []float64

	// RowMax[y] is max(|dx|, |dy|) over row y.
	RowMax []float64
}

// NewPlanes allocates zeroed planes for a width×height field.
func NewPlanes(width, height int) (*Planes, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	n := width * height
	return &Planes{
		Width:  width,
		Height: height,
		DX:     make([]float64, n),
		DY:     make([]float64, n),
		RowMax: make([]float64, height),
	}, nil
}

// Clear zeroes every plane.
func (p *Planes) Clear() {
	clear(p.DX)
	clear(p.DY)
	clear(p.RowMax)
}

// Pool is a thread-safe pool of Planes grouped by dimensions.
//
// Hosts that resynthesize while a surface is being resized hit the same few
// sizes repeatedly; reusing planes avoids two float64 allocations of
// width*height elements per call.
type Pool struct {
	mu      sync.Mutex
	buckets map[key][]*Planes
	maxSize int // max planes per bucket
}

type key struct {
	width  int
	height int
}

// New creates a pool retaining at most maxPerBucket planes per size.
// A maxPerBucket of 0 means unlimited.
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[key][]*Planes),
		maxSize: maxPerBucket,
	}
}

// Get returns zeroed planes of the given size, reusing pooled ones when
// available. It returns nil for invalid sizes.
func (p *Pool) Get(width, height int) *Planes {
	k := key{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[k]
	if n := len(bucket); n > 0 {
		planes := bucket[n-1]
		p.buckets[k] = bucket[:n-1]
		p.mu.Unlock()

		planes.Clear()
		return planes
	}
	p.mu.Unlock()

	planes, err := NewPlanes(width, height)
	if err != nil {
		return nil
	}
	return planes
}

// Put returns planes to the pool. Planes are discarded when nil or when
// their bucket is full.
func (p *Pool) Put(planes *Planes) {
	if planes == nil {
		return
	}
	k := key{width: planes.Width, height: planes.Height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[k]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[k] = append(bucket, planes)
}

// Len returns the number of pooled planes across all sizes.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// Drain drops every pooled plane.
func (p *Pool) Drain() {
	p.mu.Lock()
	clear(p.buckets)
	p.mu.Unlock()
}
