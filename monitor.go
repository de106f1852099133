// Package scalingagent embeds the auto-scaling agent and the metrics dashboard into a host application.
package scalingagent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/r-heap47/scaling-agent/internal/agent"
	"github.com/r-heap47/scaling-agent/internal/binding"
	"github.com/r-heap47/scaling-agent/internal/dashboard"
	"github.com/r-heap47/scaling-agent/internal/metric"
	pkgerrors "github.com/r-heap47/scaling-agent/internal/pkg/errors"
	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
	"github.com/r-heap47/scaling-agent/internal/scaling/clients/httpclient"
	"github.com/r-heap47/scaling-agent/internal/source"
	"golang.org/x/sync/errgroup"
)

// Binding - location of the auto-scaling service and identity of the app
type Binding = binding.Binding

// StatusListener is told whether the agent is enabled after every config refresh
type StatusListener = agent.StatusListener

// Monitor is the in-process monitoring agent. Wrap the host's handlers with
// Middleware, mount the dashboard with RegisterRoutes and call Run.
type Monitor struct {
	hub       *source.Hub
	collector *source.Collector
	dash      *dashboard.Dashboard
	agent     *agent.Agent // nil when no binding was found

	opts *options
}

// New creates a Monitor. Without an auto-scaling binding the dashboard still
// works but nothing is reported, see Bound.
func New(ctx context.Context, opts ...Option) (*Monitor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	collector, err := source.NewCollector(ctx)
	if err != nil {
		return nil, fmt.Errorf("source.NewCollector: %w", err)
	}

	m := &Monitor{
		hub:       source.NewHub(),
		collector: collector,
		opts:      o,
	}

	m.dash = dashboard.New(dashboard.Config{
		Window:      o.window,
		Environment: collector,
	})
	m.dash.Subscribe(m.hub)

	bnd, err := binding.Discover(binding.Config{
		Lookup: o.lookup,
		Static: o.static,
	})
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		log.Printf("[INFO] monitor: could not find the auto-scaling service (%s), agent is not started", err)
		return m, nil
	case err != nil:
		log.Printf("[ERROR] monitor: binding.Discover: %s, agent is not started", err)
		return m, nil
	}

	var kinds []metric.Kind
	if o.metrics != nil {
		kinds = metric.ParseKinds(o.metrics)
	}

	var timeout utils.Provider[time.Duration]
	if o.requestTimeout > 0 {
		timeout = utils.Const(o.requestTimeout)
	}

	client := httpclient.New(httpclient.Config{
		Host:       bnd.Host,
		ServiceID:  bnd.ServiceID,
		AppID:      bnd.AppID,
		Username:   bnd.Username,
		Password:   bnd.Password,
		Timeout:    timeout,
		HTTPClient: o.httpClient,
	})

	cfg := agent.Config{
		Client: client,
		Source: m.hub,
		Identity: agent.Identity{
			AppID:         bnd.AppID,
			AppName:       bnd.AppName,
			ServiceID:     bnd.ServiceID,
			InstanceIndex: bnd.InstanceIndex,
			InstanceID:    bnd.InstanceID,
		},
		Listener:       o.listener,
		Metrics:        kinds,
		ReportInterval: o.reportInterval,
		Debug:          utils.Const(o.debug),
	}
	if o.refreshInterval > 0 {
		cfg.RefreshInterval = utils.Const(o.refreshInterval)
	}
	if o.minReportInterval > 0 {
		cfg.MinReportInterval = utils.Const(o.minReportInterval)
	}

	m.agent = agent.New(ctx, cfg)

	log.Printf("[INFO] monitor: found auto-scaling service at %s for app %s", bnd.Host, bnd.AppID)

	return m, nil
}

// Bound reports whether an auto-scaling binding was found
func (m *Monitor) Bound() bool {
	return m.agent != nil
}

// Middleware times every request served by next. These timings feed the
// response time and throughput metrics.
func (m *Monitor) Middleware(next http.Handler) http.Handler {
	return source.Middleware(m.hub)(next)
}

// RegisterRoutes mounts the dashboard read API on mux
func (m *Monitor) RegisterRoutes(mux *runtime.ServeMux) error {
	return m.dash.RegisterRoutes(mux)
}

// Run samples resources and, when bound, runs the agent until ctx is cancelled.
// Run must be called once.
func (m *Monitor) Run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	if m.opts.sampler {
		sampler := source.NewSampler(source.SamplerConfig{
			Reader:      m.collector,
			Publisher:   m.hub,
			Interval:    utils.Const(m.opts.sampleInterval),
			ReadTimeout: utils.Const(m.opts.readTimeout),
		})

		probe := source.NewLatencyProbe(source.LatencyProbeConfig{
			Publisher: m.hub,
			Interval:  utils.Const(m.opts.latencyInterval),
		})

		eg.Go(func() error {
			sampler.Run(egCtx)
			return nil
		})

		eg.Go(func() error {
			probe.Run(egCtx)
			return nil
		})
	}

	if m.agent != nil {
		eg.Go(func() error {
			return m.agent.Run(egCtx)
		})
	}

	eg.Go(func() error {
		<-egCtx.Done()
		return nil
	})

	return eg.Wait()
}
