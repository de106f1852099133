package agent

import (
	"context"
	"log"
	"time"
)

// reportInterval reads the configured interval before every sleep.
// The floor only guards the sleep against a zero or tiny stored interval.
// The stored value is kept exactly as the service sent it, and every
// interval below the floor is logged.
func (a *Agent) reportInterval(ctx context.Context) time.Duration {
	interval := a.state.Snapshot().ReportInterval

	floor := a.minReportInterval(ctx)
	if floor <= 0 {
		floor = defaultMinReportInterval
	}

	if interval >= floor {
		a.warnedInterval = -1
		return interval
	}

	if a.warnedInterval != interval {
		log.Printf("[WARN] reporter: report interval %s is below %s, using %s", interval, floor, floor)
		a.warnedInterval = interval
	}

	return floor
}

// report flushes the aggregator and sends a report, unless the agent is disabled
func (a *Agent) report(ctx context.Context) {
	cfg := a.state.Snapshot()
	if !cfg.Enabled {
		a.debugf(ctx, "reporter: agent is disabled, skipping report")
		return
	}

	avg := a.aggregator.Flush(ctx)
	report := BuildReport(a.identity, cfg.Kinds, avg, a.now(ctx).UnixMilli())

	a.debugf(ctx, "reporter: sending %+v", report)

	if err := a.client.SendReport(ctx, report); err != nil {
		log.Printf("[ERROR] reporter: failed to send report: %s", err)
	}
}
