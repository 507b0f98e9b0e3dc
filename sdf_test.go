package glass

import (
	"math"
	"testing"
)

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name            string
		edge0, edge1, x float64
		want            float64
	}{
		{"below", 0, 1, -1, 0},
		{"above", 0, 1, 2, 1},
		{"midpoint", 0, 1, 0.5, 0.5},
		{"reversed edges", 1, 0, 0.25, 0.84375},
		{"reversed at edge0", 12, 0, 0, 1},
		{"reversed past edge0", 12, 0, 12, 0},
		{"equal edges below", 3, 3, 2, 0},
		{"equal edges above", 3, 3, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smoothstep(tt.edge0, tt.edge1, tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("smoothstep(%v, %v, %v) = %v, want %v", tt.edge0, tt.edge1, tt.x, got, tt.want)
			}
		})
	}
}

func TestSmoothstepCoverage(t *testing.T) {
	tests := []struct {
		name string
		sdf  float64
		want float64
	}{
		{"fully inside", -2.0, 1.0},
		{"fully outside", 2.0, 0.0},
		{"at center", 0.0, 0.5},
		{"at inner edge", -sdfAntialiasWidth, 1.0},
		{"at outer edge", sdfAntialiasWidth, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smoothstepCoverage(tt.sdf)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("smoothstepCoverage(%f) = %f, want %f", tt.sdf, got, tt.want)
			}
		})
	}
}

func TestSmoothstepCoverageMonotonic(t *testing.T) {
	// Coverage must be monotonically decreasing as sdf increases.
	prev := 1.0
	for sdf := -1.5; sdf <= 1.5; sdf += 0.01 {
		curr := smoothstepCoverage(sdf)
		if curr > prev+1e-10 {
			t.Errorf("coverage increased at sdf=%f: prev=%f, curr=%f", sdf, prev, curr)
		}
		prev = curr
	}
}

func TestRoundedRectSDF(t *testing.T) {
	size := Size{Width: 200, Height: 100}

	tests := []struct {
		name   string
		px, py float64
		radius float64
		want   float64
	}{
		{"centre", 100, 50, 20, -50},
		{"left edge", 0, 50, 20, 0},
		{"top edge", 100, 0, 20, 0},
		{"outside corner", 0, 0, 20, math.Hypot(20, 20) - 20},
		{"square corner", 0, 0, 0, 0},
		{"oversized radius clamps", 100, 50, 1000, -50},
		{"negative radius clamps", 0, 0, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundedRectSDF(tt.px, tt.py, size, tt.radius)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RoundedRectSDF(%v, %v, r=%v) = %v, want %v", tt.px, tt.py, tt.radius, got, tt.want)
			}
		})
	}
}

func TestRoundedRectCoverage(t *testing.T) {
	size := Size{Width: 100, Height: 100}

	if got := RoundedRectCoverage(50.5, 50.5, size, 20); got != 1 {
		t.Errorf("centre coverage = %v, want 1", got)
	}
	if got := RoundedRectCoverage(0.5, 0.5, size, 20); got != 0 {
		t.Errorf("rounded corner coverage = %v, want 0", got)
	}
	if got := RoundedRectCoverage(0.5, 50.5, size, 20); got <= 0 || got >= 1 {
		t.Errorf("edge pixel coverage = %v, want partial", got)
	}
}
