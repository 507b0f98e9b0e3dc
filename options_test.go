package glass

import (
	"runtime"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.workers != runtime.GOMAXPROCS(0) {
		t.Errorf("workers = %d, want GOMAXPROCS", o.workers)
	}
	if !o.pooling {
		t.Error("pooling should be enabled by default")
	}
	if o.shapeClip {
		t.Error("shape clipping should be off by default")
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o options)
	}{
		{
			name: "workers",
			opts: []Option{WithWorkers(3)},
			check: func(t *testing.T, o options) {
				if o.workers != 3 {
					t.Errorf("workers = %d, want 3", o.workers)
				}
			},
		},
		{
			name: "parallel min rows",
			opts: []Option{WithParallelMinRows(10)},
			check: func(t *testing.T, o options) {
				if o.parallelMinRows != 10 {
					t.Errorf("parallelMinRows = %d, want 10", o.parallelMinRows)
				}
			},
		},
		{
			name: "pool size re-enables pooling",
			opts: []Option{WithoutPooling(), WithPoolSize(2)},
			check: func(t *testing.T, o options) {
				if !o.pooling || o.maxPerBucket != 2 {
					t.Errorf("pooling, maxPerBucket = %v, %d, want true, 2", o.pooling, o.maxPerBucket)
				}
			},
		},
		{
			name: "without pooling",
			opts: []Option{WithoutPooling()},
			check: func(t *testing.T, o options) {
				if o.pooling {
					t.Error("pooling = true, want false")
				}
			},
		},
		{
			name: "shape clip",
			opts: []Option{WithShapeClip(true)},
			check: func(t *testing.T, o options) {
				if !o.shapeClip {
					t.Error("shapeClip = false, want true")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}

func TestNewSynthesizerAppliesOptions(t *testing.T) {
	s := NewSynthesizer(WithWorkers(1), WithoutPooling())
	defer s.Close()

	if s.workers != nil {
		t.Error("a single worker should not start a worker pool")
	}
	if s.planes != nil {
		t.Error("WithoutPooling should not create a buffer pool")
	}
}
