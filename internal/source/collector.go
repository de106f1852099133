package source

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sync/errgroup"
)

// Environment keys understood by the dashboard
const (
	EnvCommandLine = "command.line"
	EnvHostname    = "environment.HOSTNAME"
	EnvOSArch      = "os.arch"
	EnvProcessors  = "number.of.processors"
)

// Collector reads resource usage of the current process and host
type Collector struct {
	proc   *process.Process
	numCPU int
}

// NewCollector creates a Collector bound to the current process
func NewCollector(ctx context.Context) (*Collector, error) {
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid())) // nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("process.NewProcessWithContext: %w", err)
	}

	numCPU, err := cpu.CountsWithContext(ctx, true)
	if err != nil || numCPU <= 0 {
		numCPU = runtime.NumCPU()
	}

	return &Collector{
		proc:   proc,
		numCPU: numCPU,
	}, nil
}

// CPU samples process and system CPU usage as fractions of total capacity.
// The first call after creation reports zero usage for the process.
func (c *Collector) CPU(ctx context.Context) (metric.CPU, error) {
	var (
		procPercent float64
		sysPercent  float64
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		procPercent, err = c.proc.PercentWithContext(egCtx, 0)
		if err != nil {
			return fmt.Errorf("proc.PercentWithContext: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		usages, err := cpu.PercentWithContext(egCtx, 0, false)
		if err != nil {
			return fmt.Errorf("cpu.PercentWithContext: %w", err)
		}
		if len(usages) > 0 {
			sysPercent = usages[0]
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return metric.CPU{}, err
	}

	return metric.CPU{
		// process percent is per core, 100 * numCPU at most
		AppPercent: procPercent / 100 / float64(c.numCPU),
		SysPercent: sysPercent / 100,
		Time:       time.Now().UnixMilli(),
	}, nil
}

// Memory samples process RSS and host used memory
func (c *Collector) Memory(ctx context.Context) (metric.Memory, error) {
	var (
		rss  uint64
		used uint64
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		info, err := c.proc.MemoryInfoWithContext(egCtx)
		if err != nil {
			return fmt.Errorf("proc.MemoryInfoWithContext: %w", err)
		}
		rss = info.RSS
		return nil
	})

	eg.Go(func() error {
		vm, err := mem.VirtualMemoryWithContext(egCtx)
		if err != nil {
			return fmt.Errorf("mem.VirtualMemoryWithContext: %w", err)
		}
		used = vm.Used
		return nil
	})

	if err := eg.Wait(); err != nil {
		return metric.Memory{}, err
	}

	return metric.Memory{
		AppRAMUsed:   rss,
		TotalRAMUsed: used,
		Time:         time.Now().UnixMilli(),
	}, nil
}

// Environment describes the running process for the dashboard
func (c *Collector) Environment(ctx context.Context) map[string]string {
	env := map[string]string{
		EnvCommandLine: strings.Join(os.Args, " "),
		EnvOSArch:      runtime.GOARCH,
		EnvProcessors:  strconv.Itoa(c.numCPU),
	}

	if info, err := host.InfoWithContext(ctx); err == nil {
		env[EnvHostname] = info.Hostname
	} else if hostname, err := os.Hostname(); err == nil {
		env[EnvHostname] = hostname
	}

	return env
}
