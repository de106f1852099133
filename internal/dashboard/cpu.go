package dashboard

import (
	"sync"

	"github.com/r-heap47/scaling-agent/internal/metric"
)

// cpuTotals - running mean of every CPU sample since start
type cpuTotals struct {
	mu       sync.Mutex
	count    int
	app      float64
	sys      float64
	lastTime int64
}

func (c *cpuTotals) record(s metric.CPU) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count++
	c.app += s.AppPercent
	c.sys += s.SysPercent
	c.lastTime = s.Time
}

func (c *cpuTotals) average() (CPUAverage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count == 0 {
		return CPUAverage{}, false
	}

	n := float64(c.count)

	return CPUAverage{
		Time:    c.lastTime,
		Process: c.app / n,
		System:  c.sys / n,
	}, true
}
