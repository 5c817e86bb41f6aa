package engine

import (
	"context"
	"time"
)

// Run steps the match as fast as possible until it finishes or ctx is cancelled
func (m *Match) Run(ctx context.Context) (*Result, error) {
	for m.Step() {
		// Cancellation is polled once per simulated second
		if m.World.Frame%60 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return m.result, nil
}

// Play steps the match on a wall-clock ticker, calling frame after every tick
func (m *Match) Play(ctx context.Context, interval time.Duration, frame func(*Match)) (*Result, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			running := m.Step()
			if frame != nil {
				frame(m)
			}
			if !running {
				return m.result, nil
			}
		}
	}
}

// TickInterval converts a tick rate to a ticker period
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
