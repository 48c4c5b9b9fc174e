package panlex

import (
	"context"
	"time"
)

// pacer enforces a fixed pause between two consecutive requests.
// PanLex allows 2 requests per second, hence the 500ms default.
type pacer struct {
	delay time.Duration
	last  time.Time
	now   func() time.Time
}

func newPacer(delay time.Duration) *pacer {
	return &pacer{
		delay: delay,
		now:   time.Now,
	}
}

// wait blocks until delay has passed since the previous request finished.
// The first request never waits.
func (p *pacer) wait(ctx context.Context) error {
	if p.delay <= 0 || p.last.IsZero() {
		return nil
	}

	remaining := p.last.Add(p.delay).Sub(p.now())
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// done records the end of a request.
func (p *pacer) done() {
	p.last = p.now()
}
