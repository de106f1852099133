package agent

import (
	"context"
	"log"
	"time"

	"github.com/r-heap47/scaling-agent/internal/aggregator"
	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
	"github.com/r-heap47/scaling-agent/internal/scaling"
	"github.com/r-heap47/scaling-agent/internal/schedule"
	"github.com/r-heap47/scaling-agent/internal/source"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultReportInterval - report interval until the service says otherwise
	DefaultReportInterval = 30 * time.Second
	// DefaultRefreshInterval - config refresh interval
	DefaultRefreshInterval = 60 * time.Second

	defaultMinReportInterval = time.Second
)

// StatusListener is told whether the agent is enabled after every config refresh
type StatusListener interface {
	SetEnabled(enabled bool)
}

// Agent aggregates samples from a source and reports them to the auto-scaling service.
// Reporting and config refresh run on independent schedules.
type Agent struct {
	client     scaling.Client
	source     source.Source
	aggregator *aggregator.Aggregator
	state      *State
	identity   Identity
	listener   StatusListener

	refreshInterval   utils.Provider[time.Duration]
	minReportInterval utils.Provider[time.Duration]
	debug             utils.Provider[bool]
	now               utils.Provider[time.Time]

	// last interval warned about, touched by the reporter loop only
	warnedInterval time.Duration
}

// Config - agent config
type Config struct {
	Client   scaling.Client
	Source   source.Source
	Identity Identity
	// Listener is optional
	Listener StatusListener

	// Metrics - initially enabled kinds, defaults to metric.AllKinds()
	Metrics []metric.Kind
	// ReportInterval - initial report interval, defaults to DefaultReportInterval
	ReportInterval time.Duration

	RefreshInterval   utils.Provider[time.Duration]
	MinReportInterval utils.Provider[time.Duration]
	Debug             utils.Provider[bool]
	Now               utils.Provider[time.Time]
}

// New creates an Agent. Call Run(ctx) to start it.
func New(ctx context.Context, cfg Config) *Agent {
	kinds := cfg.Metrics
	if kinds == nil {
		kinds = metric.AllKinds()
	}

	reportInterval := cfg.ReportInterval
	if reportInterval == 0 {
		reportInterval = DefaultReportInterval
	}

	a := &Agent{
		client:            cfg.Client,
		source:            cfg.Source,
		state:             NewState(kinds, reportInterval),
		identity:          cfg.Identity,
		listener:          cfg.Listener,
		refreshInterval:   cfg.RefreshInterval,
		minReportInterval: cfg.MinReportInterval,
		debug:             cfg.Debug,
		now:               cfg.Now,
		warnedInterval:    -1,
	}

	if a.refreshInterval == nil {
		a.refreshInterval = utils.Const(DefaultRefreshInterval)
	}
	if a.minReportInterval == nil {
		a.minReportInterval = utils.Const(defaultMinReportInterval)
	}
	if a.debug == nil {
		a.debug = utils.Const(false)
	}
	if a.now == nil {
		a.now = utils.Now
	}

	a.aggregator = aggregator.New(ctx, aggregator.Config{Now: a.now})

	return a
}

// State returns the agent configuration holder
func (a *Agent) State() *State {
	return a.state
}

// Run announces the agent, applies the remote config once, subscribes to
// the source and runs the reporter and refresher until ctx is cancelled.
// Run must be called once.
func (a *Agent) Run(ctx context.Context) error {
	if err := a.client.NotifyStatus(ctx); err != nil {
		log.Printf("[ERROR] agent: failed to notify status: %s", err)
	}

	a.refresh(ctx)

	if a.source != nil {
		a.aggregator.Subscribe(a.source)
	}

	log.Printf("[INFO] agent: started")

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		schedule.Every(egCtx, a.reportInterval, a.report)
		return nil
	})

	eg.Go(func() error {
		schedule.Every(egCtx, a.refreshInterval, a.refresh)
		return nil
	})

	err := eg.Wait()

	log.Printf("[INFO] agent: stopped")

	return err
}

func (a *Agent) debugf(ctx context.Context, format string, args ...any) {
	if a.debug(ctx) {
		log.Printf("[DEBUG] "+format, args...)
	}
}
