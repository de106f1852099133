package source

import (
	"context"
	"log"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
	"github.com/r-heap47/scaling-agent/internal/schedule"
)

// Reader - resource usage reader, implemented by Collector
type Reader interface {
	CPU(ctx context.Context) (metric.CPU, error)
	Memory(ctx context.Context) (metric.Memory, error)
}

// ResourcePublisher - sink for CPU and memory samples, implemented by Hub
type ResourcePublisher interface {
	PublishCPU(metric.CPU)
	PublishMemory(metric.Memory)
}

// Sampler periodically reads resource usage and publishes it
type Sampler struct {
	reader    Reader
	publisher ResourcePublisher

	interval    utils.Provider[time.Duration]
	readTimeout utils.Provider[time.Duration]
}

// SamplerConfig - sampler config
type SamplerConfig struct {
	Reader      Reader
	Publisher   ResourcePublisher
	Interval    utils.Provider[time.Duration]
	ReadTimeout utils.Provider[time.Duration]
}

// NewSampler creates a Sampler. Call Run(ctx) to start it.
func NewSampler(cfg SamplerConfig) *Sampler {
	return &Sampler{
		reader:      cfg.Reader,
		publisher:   cfg.Publisher,
		interval:    cfg.Interval,
		readTimeout: cfg.ReadTimeout,
	}
}

// Run samples on every interval until ctx is cancelled
func (s *Sampler) Run(ctx context.Context) {
	schedule.Every(ctx, s.interval, s.sample)
}

func (s *Sampler) sample(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.readTimeout(ctx))
	defer cancel()

	cpuSample, err := s.reader.CPU(ctx)
	if err != nil {
		log.Printf("[ERROR] sampler: failed to read cpu usage: %s", err)
	} else {
		s.publisher.PublishCPU(cpuSample)
	}

	memSample, err := s.reader.Memory(ctx)
	if err != nil {
		log.Printf("[ERROR] sampler: failed to read memory usage: %s", err)
	} else {
		s.publisher.PublishMemory(memSample)
	}
}
