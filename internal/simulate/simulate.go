// Package simulate provides the artificial network latency the demo
// services apply before resolving. Waits are context-aware so an
// abandoned request aborts its pending work instead of leaking it.
package simulate

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is cancelled, whichever comes first.
// A zero or negative d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
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
