package aggregator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now(context.Context) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestAggregator(t *testing.T) (*Aggregator, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	return New(context.Background(), Config{Now: clock.Now}), clock
}

func TestFlush_CPUStickyAverage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	agg, _ := newTestAggregator(t)

	for _, p := range []float64{0.1, 0.2, 0.3} {
		agg.RecordCPU(metric.CPU{AppPercent: p})
	}

	assert.InDelta(t, 0.2, agg.Flush(ctx).CPU, 1e-9)
	assert.InDelta(t, 0.2, agg.Flush(ctx).CPU, 1e-9, "cpu average must survive an empty interval")

	agg.RecordCPU(metric.CPU{AppPercent: 0.5})
	assert.InDelta(t, 0.5, agg.Flush(ctx).CPU, 1e-9)
}

func TestFlush_MemoryStickyAverage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	agg, _ := newTestAggregator(t)

	assert.Zero(t, agg.Flush(ctx).Memory)

	agg.RecordMemory(metric.Memory{AppRAMUsed: 100, TotalRAMUsed: 9999})
	agg.RecordMemory(metric.Memory{AppRAMUsed: 300, TotalRAMUsed: 9999})

	assert.InDelta(t, 200, agg.Flush(ctx).Memory, 1e-9)
	assert.InDelta(t, 200, agg.Flush(ctx).Memory, 1e-9)
}

func TestFlush_ResponseTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("without latency", func(t *testing.T) {
		t.Parallel()

		agg, _ := newTestAggregator(t)
		for _, d := range []float64{100, 200, 300} {
			agg.RecordHTTP(metric.HTTP{URL: "/a", Duration: d})
		}

		got := agg.Flush(ctx)
		assert.InDelta(t, 200, got.ResponseTime, 1e-9)
		assert.Zero(t, got.DispatchQueueLatency)
	})

	t.Run("latency added", func(t *testing.T) {
		t.Parallel()

		agg, _ := newTestAggregator(t)
		agg.RecordHTTP(metric.HTTP{Duration: 10})
		agg.RecordHTTP(metric.HTTP{Duration: 30})
		agg.RecordLatency(metric.Latency{Duration: 1})
		agg.RecordLatency(metric.Latency{Duration: 3})

		got := agg.Flush(ctx)
		assert.InDelta(t, 22, got.ResponseTime, 1e-9)
		assert.InDelta(t, 2, got.DispatchQueueLatency, 1e-9)
	})

	t.Run("reset when empty", func(t *testing.T) {
		t.Parallel()

		agg, _ := newTestAggregator(t)
		agg.RecordHTTP(metric.HTTP{Duration: 50})
		agg.RecordLatency(metric.Latency{Duration: 5})
		require.InDelta(t, 55, agg.Flush(ctx).ResponseTime, 1e-9)

		// latency alone does not produce a response time
		agg.RecordLatency(metric.Latency{Duration: 7})

		got := agg.Flush(ctx)
		assert.Zero(t, got.ResponseTime)
		assert.InDelta(t, 7, got.DispatchQueueLatency, 1e-9)

		got = agg.Flush(ctx)
		assert.Zero(t, got.ResponseTime)
		assert.Zero(t, got.DispatchQueueLatency)
	})
}

func TestFlush_Throughput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	agg, clock := newTestAggregator(t)

	for range 20 {
		agg.RecordHTTP(metric.HTTP{Duration: 1})
	}
	clock.Advance(10 * time.Second)

	assert.InDelta(t, 2, agg.Flush(ctx).Throughput, 1e-9)

	clock.Advance(5 * time.Second)
	assert.Zero(t, agg.Flush(ctx).Throughput, "no requests since the previous flush")

	agg.RecordHTTP(metric.HTTP{Duration: 1})
	clock.Advance(4 * time.Second)
	assert.InDelta(t, 0.25, agg.Flush(ctx).Throughput, 1e-9, "interval starts at the previous flush")
}

func TestFlush_ThroughputZeroElapsed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	agg, _ := newTestAggregator(t)

	agg.RecordHTTP(metric.HTTP{Duration: 1})
	assert.Zero(t, agg.Flush(ctx).Throughput)
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	agg, clock := newTestAggregator(t)

	hub := source.NewHub()
	agg.Subscribe(hub)

	hub.PublishCPU(metric.CPU{AppPercent: 0.4})
	hub.PublishMemory(metric.Memory{AppRAMUsed: 64})
	hub.PublishHTTP(metric.HTTP{URL: "/x", Duration: 12})
	hub.PublishLatency(metric.Latency{Duration: 3})
	clock.Advance(time.Second)

	assert.Equal(t, AverageMetrics{
		DispatchQueueLatency: 3,
		ResponseTime:         15,
		Memory:               64,
		CPU:                  0.4,
		Throughput:           1,
	}, agg.Flush(ctx))
}

func TestRecord_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	agg, clock := newTestAggregator(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				agg.RecordCPU(metric.CPU{AppPercent: 0.5})
				agg.RecordHTTP(metric.HTTP{Duration: 10})
			}
		}()
	}
	wg.Wait()
	clock.Advance(8 * time.Second)

	got := agg.Flush(ctx)
	assert.InDelta(t, 0.5, got.CPU, 1e-9)
	assert.InDelta(t, 10, got.ResponseTime, 1e-9)
	assert.InDelta(t, 100, got.Throughput, 1e-9)
}

func TestAccumulatorPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy Policy
		want   float64
	}{
		{name: "sticky", policy: Sticky, want: 4},
		{name: "reset", policy: Reset, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			acc := newAccumulator(tc.policy)
			acc.add(2)
			acc.add(6)

			avg, n := acc.flush()
			assert.InDelta(t, 4, avg, 1e-9)
			assert.Equal(t, 2, n)

			avg, n = acc.flush()
			assert.InDelta(t, tc.want, avg, 1e-9)
			assert.Zero(t, n)
		})
	}
}
