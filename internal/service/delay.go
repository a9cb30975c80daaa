package service

import (
	"context"
	"time"
)

// simulateLatency waits d before returning, the way the demo backend pretends
// to talk to a server. It returns early with ctx.Err() on cancellation.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
