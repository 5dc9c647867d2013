package summarize

import (
	"context"
	"time"
)

// SleepPauser pauses for a fixed duration, waking early only on context
// cancellation.
type SleepPauser struct {
	Duration time.Duration
}

func (p SleepPauser) Pause(ctx context.Context) error {
	timer := time.NewTimer(p.Duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopPauser skips the inter-batch pause. Used in tests.
type NopPauser struct{}

func (NopPauser) Pause(ctx context.Context) error {
	return ctx.Err()
}
