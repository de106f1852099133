package aggregator

import (
	"context"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
	"github.com/r-heap47/scaling-agent/internal/source"
)

// AverageMetrics - snapshot produced by a single flush
type AverageMetrics struct {
	DispatchQueueLatency float64 // ms
	ResponseTime         float64 // ms
	Memory               float64 // bytes
	CPU                  float64 // fraction, 0.25 means 25%
	Throughput           float64 // requests per second
}

// Aggregator accumulates raw samples between flushes.
// Every category is guarded separately, so recording never contends across categories.
type Aggregator struct {
	latency    *accumulator
	http       *accumulator
	memory     *accumulator
	cpu        *accumulator
	throughput *throughput
}

// Config - aggregator config
type Config struct {
	// Now - clock used for throughput, defaults to utils.Now
	Now utils.Provider[time.Time]
}

// New creates an Aggregator. The throughput interval starts now.
func New(ctx context.Context, cfg Config) *Aggregator {
	now := cfg.Now
	if now == nil {
		now = utils.Now
	}

	return &Aggregator{
		latency:    newAccumulator(Reset),
		http:       newAccumulator(Reset),
		memory:     newAccumulator(Sticky),
		cpu:        newAccumulator(Sticky),
		throughput: newThroughput(ctx, now),
	}
}

// Subscribe registers the aggregator's recorders on src
func (a *Aggregator) Subscribe(src source.Source) {
	src.OnCPU(a.RecordCPU)
	src.OnMemory(a.RecordMemory)
	src.OnHTTP(a.RecordHTTP)
	src.OnLatency(a.RecordLatency)
}

// RecordCPU accounts the process CPU share of s
func (a *Aggregator) RecordCPU(s metric.CPU) {
	a.cpu.add(s.AppPercent)
}

// RecordMemory accounts the process memory of s
func (a *Aggregator) RecordMemory(s metric.Memory) {
	a.memory.add(float64(s.AppRAMUsed))
}

// RecordHTTP accounts the duration of s and counts it towards throughput
func (a *Aggregator) RecordHTTP(s metric.HTTP) {
	a.http.add(s.Duration)
	a.throughput.add()
}

// RecordLatency accounts the dispatch latency of s
func (a *Aggregator) RecordLatency(s metric.Latency) {
	a.latency.add(s.Duration)
}

// Flush computes the averages of the interval since the previous flush and starts a new one
func (a *Aggregator) Flush(ctx context.Context) AverageMetrics {
	latency, _ := a.latency.flush()

	var responseTime float64
	if httpAvg, n := a.http.flush(); n > 0 {
		responseTime = httpAvg + latency
	}

	memory, _ := a.memory.flush()
	cpu, _ := a.cpu.flush()

	return AverageMetrics{
		DispatchQueueLatency: latency,
		ResponseTime:         responseTime,
		Memory:               memory,
		CPU:                  cpu,
		Throughput:           a.throughput.flush(ctx),
	}
}
