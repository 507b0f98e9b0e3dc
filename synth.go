package glass

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/glass/internal/parallel"
	"github.com/gogpu/glass/internal/pool"
)

// Synthesis errors.
var (
	// ErrEmptySurface is returned for surfaces with no area. Zero-sized
	// surfaces are a normal transient state during layout; hosts should
	// keep their previous output.
	ErrEmptySurface = errors.New("glass: empty surface")

	// ErrBufferSize is returned when an output buffer does not hold exactly
	// width*height*4 bytes. Nothing is written in that case.
	ErrBufferSize = errors.New("glass: output buffer size mismatch")
)

// Synthesizer computes displacement maps. It owns an optional worker pool
// for row-parallel synthesis and a pool of intermediate buffers keyed by
// surface size.
//
// A Synthesizer is safe for concurrent use; calls share nothing but the
// buffer pool.
type Synthesizer struct {
	opts    options
	planes  *pool.Pool
	workers *parallel.WorkerPool
}

// NewSynthesizer creates a Synthesizer configured by opts.
// Call Close to stop its workers when it is no longer needed.
func NewSynthesizer(opts ...Option) *Synthesizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Synthesizer{opts: o}
	if o.pooling {
		s.planes = pool.New(o.maxPerBucket)
	}
	workers := 1
	if o.workers > 1 {
		s.workers = parallel.NewWorkerPool(o.workers)
		workers = s.workers.Workers()
	}
	Logger().Debug("glass: synthesizer ready", "workers", workers, "pooling", o.pooling)
	return s
}

var defaultSynthesizer = sync.OnceValue(func() *Synthesizer {
	return NewSynthesizer()
})

// Synthesize computes a displacement map with the package default
// Synthesizer.
func Synthesize(req Request) (*DisplacementMap, error) {
	return defaultSynthesizer().Synthesize(req)
}

// Synthesize computes the displacement map for req.
//
// It returns ErrEmptySurface, and no map, when either dimension is not
// positive. Degenerate swirl parameters are clamped, never rejected.
func (s *Synthesizer) Synthesize(req Request) (*DisplacementMap, error) {
	if req.Size.Empty() {
		return nil, emptySurface(req.Size)
	}

	m := &DisplacementMap{
		Width:  req.Size.Width,
		Height: req.Size.Height,
		Pix:    make([]byte, req.Size.Pixels()*bytesPerPixel),
	}
	if err := s.SynthesizeInto(m, req); err != nil {
		return nil, err
	}
	return m, nil
}

// SynthesizeInto computes the displacement map for req into dst, reusing
// dst.Pix. Hosts that keep one map per surface avoid reallocating the
// output on every resize tick.
//
// When dst.Pix does not hold exactly Width*Height*4 bytes for req.Size,
// SynthesizeInto returns ErrBufferSize and leaves dst untouched, so the
// previous frame stays valid. Builds with the glassdebug tag panic
// instead.
func (s *Synthesizer) SynthesizeInto(dst *DisplacementMap, req Request) error {
	size := req.Size
	if size.Empty() {
		return emptySurface(size)
	}
	if err := checkBuffer(dst.Pix, size.Width, size.Height); err != nil {
		if debugAssertions {
			panic(err)
		}
		return err
	}

	planes, err := s.acquire(size)
	if err != nil {
		return err
	}
	defer s.release(planes)

	s.displace(planes, req)

	// Every row must be displaced before any row is encoded.
	scale := displacementScale(fieldMax(planes))
	s.forRows(size.Height, func(y0, y1 int) {
		encodeRows(planes, dst.Pix, scale, y0, y1)
	})

	dst.Width = size.Width
	dst.Height = size.Height
	dst.FilterScale = filterScale(scale, req.density())

	Logger().Debug("glass: displacement map synthesized",
		"width", size.Width,
		"height", size.Height,
		"scale", scale,
		"filterScale", dst.FilterScale)
	return nil
}

// displace runs the influence and vortex stages, filling planes with raw
// displacements and per-row maxima.
func (s *Synthesizer) displace(planes *pool.Planes, req Request) {
	swirl := req.Swirl.clamped()
	infl := newInfluenceField(req.Size, req.Shape, swirl, req.Region, s.opts.shapeClip)
	vx := newVortex(req.Size, swirl)
	width := req.Size.Width

	s.forRows(req.Size.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			rowMax := 0.0
			row := y * width
			for x := range width {
				dx, dy := vx.at(x, y, infl.at(x, y))
				planes.DX[row+x] = dx
				planes.DY[row+x] = dy
				rowMax = math.Max(rowMax, math.Max(math.Abs(dx), math.Abs(dy)))
			}
			planes.RowMax[y] = rowMax
		}
	})
}

// forRows runs fn over [0, height), split across workers for tall surfaces.
func (s *Synthesizer) forRows(height int, fn func(y0, y1 int)) {
	if s.workers == nil || height < s.opts.parallelMinRows {
		fn(0, height)
		return
	}
	s.workers.Rows(height, fn)
}

func (s *Synthesizer) acquire(size Size) (*pool.Planes, error) {
	if s.planes != nil {
		if planes := s.planes.Get(size.Width, size.Height); planes != nil {
			return planes, nil
		}
	}
	planes, err := pool.NewPlanes(size.Width, size.Height)
	if err != nil {
		return nil, fmt.Errorf("glass: allocate field: %w", err)
	}
	return planes, nil
}

func (s *Synthesizer) release(planes *pool.Planes) {
	if s.planes != nil {
		s.planes.Put(planes)
	}
}

// Close stops the worker goroutines and drops pooled buffers. A closed
// Synthesizer still works, serially. Close is safe to call multiple times.
func (s *Synthesizer) Close() {
	if s.workers != nil {
		s.workers.Close()
	}
	if s.planes != nil {
		s.planes.Drain()
	}
}

func emptySurface(size Size) error {
	return fmt.Errorf("%w: %dx%d", ErrEmptySurface, size.Width, size.Height)
}
