package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		capacity int
		want     int
	}{
		{10, 10},
		{1, 1},
		{0, 1},
		{-5, 1},
	}

	for _, tt := range tests {
		c := New[string, int](tt.capacity)
		if got := c.Stats().Capacity; got != tt.want {
			t.Errorf("New(%d) capacity = %d, want %d", tt.capacity, got, tt.want)
		}
		if c.Len() != 0 {
			t.Errorf("New(%d).Len() = %d, want 0", tt.capacity, c.Len())
		}
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)

	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v, want 42, true", val, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("Get(key1) after update = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b is now least recent
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be cached")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheUpdateRefreshesRecency(t *testing.T) {
	c := New[int, int](2)

	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(1, 10) // 2 is now least recent
	c.Set(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("2 should have been evicted")
	}
	if v, ok := c.Get(1); !ok || v != 10 {
		t.Errorf("Get(1) = %d, %v, want 10, true", v, ok)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](4)
	if got := c.Stats().HitRate(); got != 0 {
		t.Errorf("HitRate() before lookups = %v, want 0", got)
	}

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Hits != 3 || s.Misses != 1 {
		t.Errorf("Hits, Misses = %d, %d, want 3, 1", s.Hits, s.Misses)
	}
	if s.Len != 1 || s.Capacity != 4 {
		t.Errorf("Len, Capacity = %d, %d, want 1, 4", s.Len, s.Capacity)
	}
	if got := s.HitRate(); got != 0.75 {
		t.Errorf("HitRate() = %v, want 0.75", got)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[string, int](16)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa((g * i) % 40)
				c.Set(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if n := c.Len(); n > 16 {
		t.Errorf("Len() = %d, exceeds capacity 16", n)
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[int, int](64)
	for i := range 64 {
		c.Set(i, i)
	}

	b.ResetTimer()
	for i := range b.N {
		c.Get(i & 63)
	}
}
