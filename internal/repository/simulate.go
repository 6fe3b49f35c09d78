package repository

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"roomcraft/internal/domain"
)

// Simulator makes the in-memory store behave like a remote backend: every
// call waits a random latency in [MinLatency, MaxLatency] and then fails with
// domain.ErrTransient with probability ErrorRate. A nil Simulator is a no-op.
type Simulator struct {
	MinLatency time.Duration
	MaxLatency time.Duration
	ErrorRate  float64

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulator(minLatency, maxLatency time.Duration, errorRate float64, seed uint64) *Simulator {
	return &Simulator{
		MinLatency: minLatency,
		MaxLatency: maxLatency,
		ErrorRate:  errorRate,
		rnd:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Do blocks for the simulated latency and reports a simulated failure.
// It returns ctx.Err() if the context ends first.
func (s *Simulator) Do(ctx context.Context) error {
	if s == nil {
		return nil
	}
	delay, fail := s.draw()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if fail {
		return domain.ErrTransient
	}
	return nil
}

func (s *Simulator) draw() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(1, 2))
	}
	delay := s.MinLatency
	if span := s.MaxLatency - s.MinLatency; span > 0 {
		delay += time.Duration(s.rnd.Int64N(int64(span)))
	}
	return delay, s.ErrorRate > 0 && s.rnd.Float64() < s.ErrorRate
}
