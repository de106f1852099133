package source

import (
	"sync"

	"github.com/r-heap47/scaling-agent/internal/metric"
)

// Source - raw metric source. Callbacks are invoked on the publisher's
// goroutine, so they must return promptly.
type Source interface {
	OnCPU(func(metric.CPU))
	OnMemory(func(metric.Memory))
	OnHTTP(func(metric.HTTP))
	OnLatency(func(metric.Latency))
}

// Hub - in-process fan-out source. Instrumentation publishes into the Hub,
// subscribers receive every event of the type they registered for.
type Hub struct {
	mu      sync.RWMutex
	cpu     []func(metric.CPU)
	memory  []func(metric.Memory)
	http    []func(metric.HTTP)
	latency []func(metric.Latency)
}

var _ Source = (*Hub)(nil)

// NewHub creates an empty Hub
func NewHub() *Hub {
	return &Hub{}
}

// OnCPU registers a CPU sample callback
func (h *Hub) OnCPU(f func(metric.CPU)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cpu = append(h.cpu, f)
}

// OnMemory registers a memory sample callback
func (h *Hub) OnMemory(f func(metric.Memory)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.memory = append(h.memory, f)
}

// OnHTTP registers an HTTP completion callback
func (h *Hub) OnHTTP(f func(metric.HTTP)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.http = append(h.http, f)
}

// OnLatency registers a latency callback
func (h *Hub) OnLatency(f func(metric.Latency)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latency = append(h.latency, f)
}

// PublishCPU delivers s to every CPU subscriber
func (h *Hub) PublishCPU(s metric.CPU) {
	h.mu.RLock()
	subs := h.cpu
	h.mu.RUnlock()

	for _, f := range subs {
		f(s)
	}
}

// PublishMemory delivers s to every memory subscriber
func (h *Hub) PublishMemory(s metric.Memory) {
	h.mu.RLock()
	subs := h.memory
	h.mu.RUnlock()

	for _, f := range subs {
		f(s)
	}
}

// PublishHTTP delivers s to every HTTP subscriber
func (h *Hub) PublishHTTP(s metric.HTTP) {
	h.mu.RLock()
	subs := h.http
	h.mu.RUnlock()

	for _, f := range subs {
		f(s)
	}
}

// PublishLatency delivers s to every latency subscriber
func (h *Hub) PublishLatency(s metric.Latency) {
	h.mu.RLock()
	subs := h.latency
	h.mu.RUnlock()

	for _, f := range subs {
		f(s)
	}
}
