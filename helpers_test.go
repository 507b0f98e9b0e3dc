package glass

import "testing"

// Test helper functions shared across glass tests.

// testRequest returns a request with the end-to-end reference parameters.
func testRequest(w, h int) Request {
	return Request{
		Size:         Size{Width: w, Height: h},
		PixelDensity: 1,
		Shape:        Shape{BorderRadius: 20, EdgeThickness: 12},
		Swirl:        Swirl{Intensity: 8, Scale: 1, Radius: 1, Offset: 0},
		Region:       AllCorners(),
	}
}

// newTestSynthesizer returns a serial synthesizer closed at test cleanup.
func newTestSynthesizer(t testing.TB, opts ...Option) *Synthesizer {
	t.Helper()
	s := NewSynthesizer(append([]Option{WithWorkers(1)}, opts...)...)
	t.Cleanup(s.Close)
	return s
}

// mustSynthesize fails the test when synthesis fails.
func mustSynthesize(t testing.TB, s *Synthesizer, req Request) *DisplacementMap {
	t.Helper()
	m, err := s.Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize(%dx%d) = %v", req.Size.Width, req.Size.Height, err)
	}
	return m
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
