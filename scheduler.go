package glass

import (
	"context"
	"sync"
	"time"

	"github.com/gogpu/glass/internal/cache"
)

// DefaultFrameInterval is one refresh at 60Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// ApplyFunc receives each newly synthesized map together with the request
// it was built from. It runs on the goroutine that calls Flush or Run.
type ApplyFunc func(m *DisplacementMap, req Request)

// Scheduler coalesces synthesis requests from a host. Requests land in a
// single pending slot, where a newer request replaces an older one; each
// frame at most one pending request is synthesized. A request equal to the
// one already applied is dropped without work.
//
// When synthesis fails the previous map stays current and the failure is
// logged at warn level.
//
// With WithMapCache, maps of recent requests are kept and reapplied without
// synthesis, for hosts that flip between a few states. Applied maps may then
// be shared between frames and must be treated as read-only.
type Scheduler struct {
	synth    *Synthesizer
	apply    ApplyFunc
	interval time.Duration
	ticks    <-chan time.Time
	maps     *cache.Cache[Request, *DisplacementMap]

	// flushMu serializes Flush so two frames never synthesize at once.
	flushMu sync.Mutex

	mu         sync.Mutex
	pending    Request
	hasPending bool
	applied    Request
	hasApplied bool
	last       *DisplacementMap
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithFrameInterval sets the interval between flushes in Run.
func WithFrameInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithFrameTicks drives Run from an external frame signal, such as a vsync
// callback, instead of a ticker.
func WithFrameTicks(ticks <-chan time.Time) SchedulerOption {
	return func(s *Scheduler) {
		s.ticks = ticks
	}
}

// WithMapCache keeps the maps of the n most recently applied requests.
func WithMapCache(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n > 0 {
			s.maps = cache.New[Request, *DisplacementMap](n)
		}
	}
}

// NewScheduler creates a Scheduler synthesizing with synth, or with the
// package default Synthesizer when synth is nil. apply may be nil.
func NewScheduler(synth *Synthesizer, apply ApplyFunc, opts ...SchedulerOption) *Scheduler {
	if synth == nil {
		synth = defaultSynthesizer()
	}
	s := &Scheduler{
		synth:    synth,
		apply:    apply,
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule records req as the next request to synthesize, superseding any
// request still pending.
func (s *Scheduler) Schedule(req Request) {
	s.mu.Lock()
	s.pending = req
	s.hasPending = true
	s.mu.Unlock()
}

// Pending reports whether a request is waiting for the next frame.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasPending
}

// Last returns the most recently applied map, or nil.
func (s *Scheduler) Last() *DisplacementMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Flush synthesizes the pending request, if any, and reports whether a new
// map was applied. Hosts with their own frame loop call Flush once per
// frame instead of running Run.
func (s *Scheduler) Flush() bool {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	if !s.hasPending {
		s.mu.Unlock()
		return false
	}
	req := s.pending
	s.hasPending = false
	if s.hasApplied && req == s.applied {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	m, err := s.synthesize(req)
	if err != nil {
		Logger().Warn("glass: frame skipped, keeping previous map",
			"width", req.Size.Width,
			"height", req.Size.Height,
			"err", err)
		return false
	}

	s.mu.Lock()
	s.applied = req
	s.hasApplied = true
	s.last = m
	s.mu.Unlock()

	if s.apply != nil {
		s.apply(m, req)
	}
	return true
}

// synthesize returns the cached map for req or synthesizes a new one.
func (s *Scheduler) synthesize(req Request) (*DisplacementMap, error) {
	if s.maps == nil {
		return s.synth.Synthesize(req)
	}
	if m, ok := s.maps.Get(req); ok {
		Logger().Debug("glass: map reused",
			"width", req.Size.Width,
			"height", req.Size.Height,
			"hitRate", s.maps.Stats().HitRate())
		return m, nil
	}
	m, err := s.synth.Synthesize(req)
	if err != nil {
		return nil, err
	}
	s.maps.Set(req, m)

	st := s.maps.Stats()
	Logger().Debug("glass: map cached",
		"entries", st.Len,
		"capacity", st.Capacity,
		"evictions", st.Evictions,
		"hitRate", st.HitRate())
	return m, nil
}

// Run flushes once per frame until ctx is done, then returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	ticks := s.ticks
	if ticks == nil {
		t := time.NewTicker(s.interval)
		defer t.Stop()
		ticks = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			s.Flush()
		}
	}
}
