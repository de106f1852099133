package boot

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	scalingagent "github.com/r-heap47/scaling-agent"
	"github.com/r-heap47/scaling-agent/internal/config"
	"github.com/r-heap47/scaling-agent/internal/health"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

var configPath = flag.String("config", "config/config.yaml", "Path to YAML config file")

// Run .
// nolint: revive
func Run() error {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := health.New()

	// === MONITOR ===

	opts := []scalingagent.Option{
		scalingagent.WithMetrics(cfg.Agent.Metrics...),
		scalingagent.WithReportInterval(cfg.Agent.ReportInterval.Duration),
		scalingagent.WithRefreshInterval(cfg.Agent.ConfigRefreshInterval.Duration),
		scalingagent.WithMinReportInterval(cfg.Agent.MinReportInterval.Duration),
		scalingagent.WithRequestTimeout(cfg.Agent.RequestTimeout.Duration),
		scalingagent.WithDebug(cfg.Agent.Debug),
		scalingagent.WithWindow(cfg.Dashboard.Window.Duration),
		scalingagent.WithStatusListener(notifier),
		scalingagent.WithStaticBinding(scalingagent.Binding{
			Host:          cfg.Binding.URL,
			ServiceID:     cfg.Binding.ServiceID,
			AppID:         cfg.Binding.AppID,
			Username:      cfg.Binding.Username,
			Password:      cfg.Binding.Password,
			AppName:       cfg.Binding.AppName,
			InstanceIndex: cfg.Binding.InstanceIndex,
			InstanceID:    cfg.Binding.InstanceID,
		}),
	}

	if cfg.Sampler.Enabled {
		opts = append(opts, scalingagent.WithSampler(
			cfg.Sampler.Interval.Duration,
			cfg.Sampler.ReadTimeout.Duration,
			cfg.Sampler.LatencyInterval.Duration,
		))
	} else {
		opts = append(opts, scalingagent.WithoutSampler())
	}

	mon, err := scalingagent.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("scalingagent.New: %w", err)
	}

	if !mon.Bound() {
		notifier.Disabled()
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return mon.Run(egCtx)
	})

	// === HEALTH (GRPC) SERVER SETUP ===

	var grpcServer *grpc.Server
	if cfg.Health.Enabled {
		grpcServer = grpc.NewServer()
		notifier.Register(grpcServer)

		healthEndpoint := net.JoinHostPort(cfg.Health.Host, cfg.Health.Port)

		lis, err := net.Listen("tcp", healthEndpoint)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}

		eg.Go(func() error {
			log.Printf("[GRPC] health server is set up on %s\n", healthEndpoint)

			if err := grpcServer.Serve(lis); err != nil {
				return fmt.Errorf("grpcServer.Serve: %w", err)
			}
			return nil
		})
	}

	// === DASHBOARD (GRPC-GATEWAY MUX) SERVER SETUP ===

	var httpServer *http.Server
	if cfg.Dashboard.Enabled {
		gwMux := runtime.NewServeMux()
		if err := mon.RegisterRoutes(gwMux); err != nil {
			return fmt.Errorf("mon.RegisterRoutes: %w", err)
		}

		httpServer = &http.Server{
			Addr:    net.JoinHostPort(cfg.Dashboard.Host, cfg.Dashboard.Port),
			Handler: mon.Middleware(gwMux),
		}

		eg.Go(func() error {
			log.Printf("[HTTP] dashboard server is set up on %s\n", httpServer.Addr)

			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("httpServer.ListenAndServe: %w", err)
			}
			return nil
		})
	}

	// === GRACEFUL SHUTDOWN ===

	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
		case <-egCtx.Done():
		}

		// cancel root context: stops the agent loops and the samplers
		cancel()
		notifier.Shutdown()

		if grpcServer != nil {
			log.Println("[GRPC] shutting down health server...")
			grpcServer.GracefulStop()
		}

		if httpServer != nil {
			log.Println("[HTTP] shutting down dashboard server...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Duration)
			defer shutdownCancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("httpServer.Shutdown: %w", err)
			}
		}

		log.Println("[INFO] shutdown success")

		return nil
	})

	return eg.Wait()
}
