package watchface

import (
	"context"
	"time"
)

// Clock returns the current local time.
type Clock func() time.Time

// Ticks sends a tick event at every unit boundary of clock time until ctx is
// done, then closes the channel. Each event carries the boundary time.
func Ticks(ctx context.Context, unit TimeUnit, clock Clock) <-chan Event {
	if clock == nil {
		clock = time.Now
	}
	period := unit.Duration()
	ch := make(chan Event)

	go func() {
		defer close(ch)

		for {
			now := clock()
			next := now.Truncate(period).Add(period)
			timer := time.NewTimer(next.Sub(now))

			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			select {
			case <-ctx.Done():
				return
			case ch <- TickEvent(next):
			}
		}
	}()
	return ch
}
