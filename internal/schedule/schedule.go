package schedule

import (
	"context"
	"time"

	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
)

// Every calls fn after each interval until ctx is cancelled. It blocks.
//
// The interval is read again before every wait, so a changed value takes
// effect on the next cycle. A non-positive interval re-arms immediately.
// fn runs on the calling goroutine; the next wait starts once fn returns.
func Every(ctx context.Context, interval utils.Provider[time.Duration], fn func(ctx context.Context)) {
	for {
		timer := time.NewTimer(interval(ctx))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		// cancellation wins over a timer that fired at the same time
		if utils.CtxDone(ctx) != nil {
			return
		}

		fn(ctx)
	}
}
