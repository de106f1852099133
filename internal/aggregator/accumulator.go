package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
)

// Policy - what an accumulator reports for an interval without samples
type Policy int

const (
	// Sticky keeps the previous average. Used for levels (CPU, memory).
	Sticky Policy = iota
	// Reset reports zero. Used for activity (requests, latency).
	Reset
)

// accumulator - running count/sum/average of a single category
type accumulator struct {
	mu      sync.Mutex
	policy  Policy
	count   int
	sum     float64
	average float64
}

func newAccumulator(policy Policy) *accumulator {
	return &accumulator{policy: policy}
}

func (a *accumulator) add(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.count++
	a.sum += v
}

// flush computes the interval average, zeroes count and sum and returns
// the average together with the number of samples it was computed from
func (a *accumulator) flush() (float64, int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := a.count
	switch {
	case n > 0:
		a.average = a.sum / float64(n)
	case a.policy == Reset:
		a.average = 0
	}

	a.count = 0
	a.sum = 0

	return a.average, n
}

// throughput counts requests between two flushes
type throughput struct {
	mu           sync.Mutex
	now          utils.Provider[time.Time]
	requestCount int
	lastFlush    time.Time
}

func newThroughput(ctx context.Context, now utils.Provider[time.Time]) *throughput {
	return &throughput{
		now:       now,
		lastFlush: now(ctx),
	}
}

func (t *throughput) add() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requestCount++
}

// flush returns requests per second since the previous flush
func (t *throughput) flush(ctx context.Context) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now(ctx)
	elapsed := now.Sub(t.lastFlush).Seconds()
	count := t.requestCount

	t.requestCount = 0
	t.lastFlush = now

	if count == 0 || elapsed <= 0 {
		return 0
	}

	return float64(count) / elapsed
}
