package dashboard

import (
	"sync"

	"github.com/r-heap47/scaling-agent/internal/metric"
)

// httpAggregate summarises requests between two reads
type httpAggregate struct {
	mu   sync.Mutex
	line HTTPLine
}

func (h *httpAggregate) record(s metric.HTTP) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.line.Total == 0 {
		h.line = HTTPLine{
			Time:    s.Time,
			URL:     s.URL,
			Longest: s.Duration,
			Average: s.Duration,
			Total:   1,
		}
		return
	}

	prev := float64(h.line.Total)
	h.line.Total++
	h.line.Average = (h.line.Average*prev + s.Duration) / float64(h.line.Total)
	h.line.Time = s.Time

	if s.Duration > h.line.Longest {
		h.line.Longest = s.Duration
		h.line.URL = s.URL
	}
}

// drain returns the summary and resets it, false when nothing was recorded
func (h *httpAggregate) drain() (HTTPLine, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.line.Total == 0 {
		return HTTPLine{}, false
	}

	line := h.line
	h.line = HTTPLine{}

	return line, true
}
