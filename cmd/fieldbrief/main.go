package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deusflow/fieldbrief/internal/app"
	"github.com/deusflow/fieldbrief/internal/config"
	"github.com/deusflow/fieldbrief/internal/logger"
	"github.com/deusflow/fieldbrief/internal/metrics"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred shutdown runs before exit.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(false)
		logger.Error("Invalid configuration", "error", err)
		return 1
	}
	logger.Init(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.EnableHTTPMonitoring {
		srv := startMonitoringServer(cfg.MonitoringPort)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	a, cleanup, err := app.NewFromConfig(ctx, cfg)
	if err != nil {
		logger.Error("Startup failed", "error", err)
		return 1
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		logger.Error("Digest failed", "error", err)
		return 1
	}
	return 0
}

func startMonitoringServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/metrics", metricsHandler)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting monitoring server", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Monitoring server error", "error", err)
		}
	}()
	return srv
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	code := http.StatusOK
	if !metrics.Global.Healthy() {
		status = "error"
		code = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":      status,
		"last_run":    stats["last_run_time"],
		"last_run_id": stats["last_run_id"],
		"last_error":  stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(metrics.Global.GetStats())
}
