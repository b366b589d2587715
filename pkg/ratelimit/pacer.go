// Package ratelimit enforces the remote's fixed inter-call delay for
// rate-limited workflows. Code redemption allows one submission every
// few seconds; callers run strictly sequentially and wait out the
// interval between calls instead of parallelizing.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Pacer spaces calls at least one interval apart. The first Wait
// returns immediately; each later Wait blocks until the interval
// since the previous release has passed. Safe for concurrent use,
// though paced workflows are expected to be sequential.
type Pacer struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time

	// now is the clock source, overridable for tests.
	now func() time.Time
}

// NewPacer creates a pacer with the given minimum interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		interval: interval,
		now:      time.Now,
	}
}

// Wait blocks until the interval since the previous release has
// elapsed, or returns the context's error if it is cancelled first.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := p.now()
	var delay time.Duration
	if !p.last.IsZero() {
		if elapsed := now.Sub(p.last); elapsed < p.interval {
			delay = p.interval - elapsed
		}
	}
	release := now.Add(delay)
	p.last = release
	p.mu.Unlock()

	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Interval returns the pacer's minimum interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}
