package dashboard

import (
	"context"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/source"
)

// DefaultWindow - age after which CPU and memory lines are evicted
const DefaultWindow = 1800 * time.Second

// EnvironmentProvider describes the running process, implemented by source.Collector
type EnvironmentProvider interface {
	Environment(ctx context.Context) map[string]string
}

var envParameters = []struct {
	key   string
	label string
}{
	{key: source.EnvCommandLine, label: "Command Line"},
	{key: source.EnvHostname, label: "Hostname"},
	{key: source.EnvOSArch, label: "OS Architecture"},
	{key: source.EnvProcessors, label: "Number of Processors"},
}

// Dashboard retains recent samples for the dashboard UI
type Dashboard struct {
	cpu    *Window[CPULine]
	memory *Window[MemoryLine]
	http   httpAggregate
	urls   *urlAggregate
	totals cpuTotals

	env EnvironmentProvider
}

// Config - dashboard config
type Config struct {
	// Window defaults to DefaultWindow
	Window time.Duration
	// Now defaults to time.Now
	Now func() time.Time
	// Environment is optional, without it /envRequest is empty
	Environment EnvironmentProvider
}

// New creates a Dashboard
func New(cfg Config) *Dashboard {
	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Dashboard{
		cpu:    NewWindow[CPULine](window, now),
		memory: NewWindow[MemoryLine](window, now),
		urls:   newURLAggregate(),
		env:    cfg.Environment,
	}
}

// Subscribe registers the dashboard's recorders on src
func (d *Dashboard) Subscribe(src source.Source) {
	src.OnCPU(d.RecordCPU)
	src.OnMemory(d.RecordMemory)
	src.OnHTTP(d.RecordHTTP)
}

// RecordCPU stores a CPU line and accounts the sample in the running average
func (d *Dashboard) RecordCPU(s metric.CPU) {
	d.totals.record(s)
	d.cpu.Insert(CPULine{
		Time:    s.Time,
		Process: s.AppPercent,
		System:  s.SysPercent,
	})
}

// RecordMemory stores a memory line
func (d *Dashboard) RecordMemory(s metric.Memory) {
	d.memory.Insert(MemoryLine{
		Time:         s.Time,
		Physical:     s.AppRAMUsed,
		PhysicalUsed: s.TotalRAMUsed,
	})
}

// RecordHTTP updates the request summary and the URL averages
func (d *Dashboard) RecordHTTP(s metric.HTTP) {
	d.http.record(s)
	d.urls.record(s)
}

// ReadCPU drains CPU lines
func (d *Dashboard) ReadCPU() []CPULine {
	return d.cpu.DrainAll()
}

// ReadMemory drains memory lines
func (d *Dashboard) ReadMemory() []MemoryLine {
	return d.memory.DrainAll()
}

// ReadHTTPAggregate drains the request summary, false when there were no requests
func (d *Dashboard) ReadHTTPAggregate() (HTTPLine, bool) {
	return d.http.drain()
}

// ReadURLAggregates returns per-URL averages sorted by URL
func (d *Dashboard) ReadURLAggregates() []URLLine {
	return d.urls.snapshot()
}

// ReadCPUAverage returns the mean CPU usage since start, false before the first sample
func (d *Dashboard) ReadCPUAverage() (CPUAverage, bool) {
	return d.totals.average()
}

// ReadEnvironment returns the known environment parameters in a fixed order
func (d *Dashboard) ReadEnvironment(ctx context.Context) []EnvRow {
	rows := make([]EnvRow, 0, len(envParameters))
	if d.env == nil {
		return rows
	}

	env := d.env.Environment(ctx)
	for _, p := range envParameters {
		if value, ok := env[p.key]; ok {
			rows = append(rows, EnvRow{Parameter: p.label, Value: value})
		}
	}

	return rows
}
