package serp

import (
	"context"
	"math/rand/v2"
	"time"
)

// Pauser waits between two sequential page scrapes.
type Pauser func(ctx context.Context) error

// RandomPause waits a uniformly random duration in [lo, hi], returning early
// with ctx's error if it is cancelled first.
func RandomPause(lo, hi time.Duration) Pauser {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		d := lo
		if hi > lo {
			d += rand.N(hi - lo + 1)
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
}
