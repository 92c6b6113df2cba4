package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/vango-dev/statecore/internal/config"
	"github.com/vango-dev/statecore/internal/logging"
	"github.com/vango-dev/statecore/pkg/features/store"
	"github.com/vango-dev/statecore/pkg/metrics"
	"github.com/vango-dev/statecore/pkg/middleware"
	"github.com/vango-dev/statecore/pkg/todo"
)

// app is the state shared by every command: flags, configuration and the
// observability stack built from them.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	logLevel    string
	metricsAddr string
	trace       bool

	cfg       *config.Config
	logger    *slog.Logger
	collector *metrics.Collector

	stopMetrics context.CancelFunc
	metricsDone chan error
}

func (a *app) setup(ctx context.Context) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOptional(a.configPath, wd)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = a.metricsAddr
	}
	if a.trace {
		cfg.Tracing.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logging.New(a.errOut, cfg)
	if err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		a.collector = metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace))
		if err := a.collector.RegisterRuntime(); err != nil {
			return err
		}
		if cfg.Metrics.Addr != "" {
			a.serveMetrics(ctx, cfg.Metrics.Addr)
		}
	}
	return nil
}

func (a *app) serveMetrics(ctx context.Context, addr string) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, a.stopMetrics = context.WithCancel(ctx)
	a.metricsDone = make(chan error, 1)

	go func() {
		a.metricsDone <- a.collector.Serve(ctx, addr)
	}()
	a.logger.Info("serving metrics", "addr", addr)
}

func (a *app) teardown() error {
	if a.stopMetrics == nil {
		return nil
	}
	a.stopMetrics()
	a.stopMetrics = nil
	return <-a.metricsDone
}

// todoMiddlewares returns the transition middlewares enabled by the
// configuration, outermost first.
func (a *app) todoMiddlewares(storeName string) []store.Middleware[todo.Action] {
	var mws []store.Middleware[todo.Action]
	if a.cfg.Tracing.Enabled {
		mws = append(mws, middleware.OpenTelemetry[todo.Action](
			middleware.WithTracerName(a.cfg.Tracing.TracerName),
			middleware.WithSpanStoreName(storeName),
		))
	}
	if a.collector != nil {
		mws = append(mws, middleware.Prometheus[todo.Action](
			middleware.WithRegistry(a.collector.Registry()),
			middleware.WithNamespace(a.cfg.Metrics.Namespace),
			middleware.WithStoreName(storeName),
		))
	}
	mws = append(mws, middleware.Logging[todo.Action](a.logger))
	return mws
}
