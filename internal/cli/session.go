package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/config"
	"github.com/aretw0/parley/internal/demo"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/observability"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// Streams groups the process streams a session uses.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunSession plays the demo conversation once with the given settings.
func RunSession(ctx context.Context, cfg config.Config, streams Streams) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(streams.Err, level)

	console := createConsole(cfg, streams)
	if cfg.Banner && cfg.Format == config.FormatText {
		tui.PrintBanner(streams.Out, parley.Version)
	}

	hooks := createDebugHooks(logger)
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		hooks = observability.Chain(hooks, metrics.Hooks())

		stop := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer stop()
	}

	d, err := demo.Build(cfg.MaxAttempts,
		parley.WithConsole(console),
		parley.WithLogger(logger),
		parley.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return fmt.Errorf("error building dialogue: %w", err)
	}

	return handleExecutionError(ctx, logger, d.Run(ctx))
}

func createConsole(cfg config.Config, streams Streams) ports.Console {
	if cfg.Format == config.FormatJSON {
		return runner.NewJSONHandler(streams.In, streams.Out)
	}
	var opts []runner.TextHandlerOption
	if isTerminal(streams.In) {
		opts = append(opts, runner.WithPrompt("> "))
	}
	return runner.NewTextHandler(streams.In, streams.Out, opts...)
}

// serveMetrics exposes the registry over HTTP until the returned stop function is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	srv := &http.Server{
		Addr:              addr,
		Handler:           observability.NewHandler(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
