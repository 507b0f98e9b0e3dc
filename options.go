package glass

import "runtime"

// Option configures a Synthesizer during creation.
//
// Example:
//
//	// Serial synthesis without buffer reuse
//	s := glass.NewSynthesizer(glass.WithWorkers(1), glass.WithoutPooling())
//
//	// Clip the swirl to the rounded rectangle
//	s := glass.NewSynthesizer(glass.WithShapeClip(true))
type Option func(*options)

// options holds optional configuration for Synthesizer creation.
type options struct {
	workers int

	// parallelMinRows is the smallest height split across workers.
	parallelMinRows int

	pooling      bool
	maxPerBucket int

	shapeClip bool
}

// defaultOptions returns the default synthesizer options.
func defaultOptions() options {
	return options{
		workers:         runtime.GOMAXPROCS(0),
		parallelMinRows: 64,
		pooling:         true,
		maxPerBucket:    4,
	}
}

// WithWorkers sets the number of goroutines the displacement and encoding
// passes are split across. Values of 1 or less synthesize serially on the
// caller's goroutine. The output does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithParallelMinRows sets the smallest surface height, in rows, that is
// split across workers. Shorter surfaces are synthesized serially.
func WithParallelMinRows(rows int) Option {
	return func(o *options) {
		o.parallelMinRows = rows
	}
}

// WithPoolSize sets how many intermediate buffers per surface size are kept
// for reuse. Hosts resynthesizing during drag-resize benefit from a few.
func WithPoolSize(maxPerBucket int) Option {
	return func(o *options) {
		o.pooling = true
		o.maxPerBucket = maxPerBucket
	}
}

// WithoutPooling allocates fresh intermediate buffers on every call.
func WithoutPooling() Option {
	return func(o *options) {
		o.pooling = false
	}
}

// WithShapeClip masks influence to the rounded rectangle described by
// Shape.BorderRadius, so that no swirl appears outside rounded corners.
// By default influence follows the straight edges only.
func WithShapeClip(clip bool) Option {
	return func(o *options) {
		o.shapeClip = clip
	}
}
