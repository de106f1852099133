package source

import (
	"context"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
	"github.com/r-heap47/scaling-agent/internal/schedule"
)

// LatencyPublisher - sink for latency events, implemented by Hub
type LatencyPublisher interface {
	PublishLatency(metric.Latency)
}

// LatencyProbe measures how long a freshly spawned goroutine waits before
// the scheduler runs it, and publishes the result as a Latency event.
type LatencyProbe struct {
	publisher LatencyPublisher
	interval  utils.Provider[time.Duration]
}

// LatencyProbeConfig - latency probe config
type LatencyProbeConfig struct {
	Publisher LatencyPublisher
	Interval  utils.Provider[time.Duration]
}

// NewLatencyProbe creates a LatencyProbe. Call Run(ctx) to start it.
func NewLatencyProbe(cfg LatencyProbeConfig) *LatencyProbe {
	return &LatencyProbe{
		publisher: cfg.Publisher,
		interval:  cfg.Interval,
	}
}

// Run measures on every interval until ctx is cancelled
func (p *LatencyProbe) Run(ctx context.Context) {
	schedule.Every(ctx, p.interval, p.measure)
}

func (p *LatencyProbe) measure(ctx context.Context) {
	latency := make(chan time.Duration, 1)

	start := time.Now()
	go func() {
		latency <- time.Since(start)
	}()

	select {
	case <-ctx.Done():
	case d := <-latency:
		p.publisher.PublishLatency(metric.Latency{
			Duration: float64(d) / float64(time.Millisecond),
		})
	}
}
