package pool

import (
	"errors"
	"sync"
	"testing"
)

func TestNewPlanes(t *testing.T) {
	p, err := NewPlanes(4, 3)
	if err != nil {
		t.Fatalf("NewPlanes() = %v", err)
	}
	if len(p.DX) != 12 || len(p.DY) != 12 {
		t.Errorf("plane lengths = %d, %d, want 12", len(p.DX), len(p.DY))
	}
	if len(p.RowMax) != 3 {
		t.Errorf("len(RowMax) = %d, want 3", len(p.RowMax))
	}
}

func TestNewPlanesInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPlanes(tt.w, tt.h); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("NewPlanes(%d, %d) error = %v, want ErrInvalidSize", tt.w, tt.h, err)
			}
		})
	}
}

func TestPoolReuseClears(t *testing.T) {
	p := New(2)

	a := p.Get(8, 8)
	a.DX[5] = 3
	a.DY[7] = -2
	a.RowMax[1] = 3
	p.Put(a)

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}

	b := p.Get(8, 8)
	if b != a {
		t.Error("Get() should reuse pooled planes of the same size")
	}
	if b.DX[5] != 0 || b.DY[7] != 0 || b.RowMax[1] != 0 {
		t.Error("reused planes were not cleared")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Get, want 0", p.Len())
	}
}

func TestPoolSizeBuckets(t *testing.T) {
	p := New(0)
	p.Put(p.Get(8, 8))

	c := p.Get(8, 9)
	if c.Width != 8 || c.Height != 9 {
		t.Errorf("Get(8, 9) returned %dx%d", c.Width, c.Height)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (8x8 bucket untouched)", p.Len())
	}
}

func TestPoolBucketLimit(t *testing.T) {
	p := New(1)
	p.Put(p.Get(4, 4))
	p.Put(p.Get(4, 4)) // reuses the pooled one
	extra, _ := NewPlanes(4, 4)
	p.Put(extra)

	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPoolInvalidGet(t *testing.T) {
	p := New(1)
	if got := p.Get(0, 5); got != nil {
		t.Errorf("Get(0, 5) = %v, want nil", got)
	}
	p.Put(nil)
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Put(nil), want 0", p.Len())
	}
}

func TestPoolDrain(t *testing.T) {
	p := New(0)
	for range 3 {
		planes, _ := NewPlanes(2, 2)
		p.Put(planes)
	}
	p.Drain()
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Drain, want 0", p.Len())
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := New(4)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				planes := p.Get(16, 16)
				planes.DX[0] = 1
				p.Put(planes)
			}
		}()
	}
	wg.Wait()

	if n := p.Len(); n > 4 {
		t.Errorf("Len() = %d, want <= 4", n)
	}
}
