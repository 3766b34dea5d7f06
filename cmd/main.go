package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/brewscout/internal/config"
	"github.com/UnknownOlympus/brewscout/internal/logger"
	"github.com/UnknownOlympus/brewscout/internal/metrics"
	"github.com/UnknownOlympus/brewscout/internal/places"
	"github.com/UnknownOlympus/brewscout/internal/server"
	"github.com/UnknownOlympus/brewscout/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 20 * time.Second
	shutdownTimeout = 10 * time.Second
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env, os.Stdout)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// The provider client is created once and shared read-only by all requests.
	provider, err := places.NewProvider(places.ProviderConfig{
		APIKey:  cfg.APIKey,
		Timeout: cfg.ProviderTimeout,
		BaseURL: cfg.ProviderBaseURL,
		Logger:  log,
	})
	if err != nil {
		stop()
		log.Error("Failed to create places provider", "error", err)
		os.Exit(1)
	}

	log.InfoContext(ctx, "Places provider initialized",
		"provider", places.ProviderName, "timeout", cfg.ProviderTimeout)

	finder := service.NewFinderService(log, provider, places.ProviderName, appMetrics, service.SearchOptions{
		Keywords:   cfg.Keywords,
		Language:   cfg.Language,
		OpenNow:    cfg.OpenNow,
		MaxResults: cfg.MaxResults,
	})
	router := server.NewRouter(server.NewHandlers(finder, appMetrics, log), appMetrics, log, cfg.RequestTimeout)

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	monitoringServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HealthPort),
		Handler:      monitoringHandler(log, reg),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { return serve(gctx, log, "search API", apiServer) })
	group.Go(func() error { return serve(gctx, log, "monitoring", monitoringServer) })

	log.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	if err = group.Wait(); err != nil {
		log.ErrorContext(ctx, "Application stopped with error", "error", err)
		stop()
		os.Exit(1)
	}

	log.InfoContext(ctx, "Application stopped gracefully.")
}

// serve runs srv until ctx is canceled, then shuts it down gracefully.
func serve(ctx context.Context, log *slog.Logger, name string, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting server", "server", name, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server failed: %w", name, err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutdown signal received. Stopping server...", "server", name)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down %s server: %w", name, err)
	}

	return nil
}

// monitoringHandler serves health check and metrics endpoints.
func monitoringHandler(log *slog.Logger, reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(writer http.ResponseWriter, req *http.Request) {
		writer.WriteHeader(http.StatusOK)
		if _, err := writer.Write([]byte("OK")); err != nil {
			log.ErrorContext(req.Context(), "failed to write reply", "error", err)
		}
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return mux
}
