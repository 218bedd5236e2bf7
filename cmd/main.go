package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/recruitiq/internal/adapters/http/api"
	"github.com/okian/recruitiq/internal/adapters/repository"
	"github.com/okian/recruitiq/internal/adapters/repository/sqlite"
	app "github.com/okian/recruitiq/internal/app"
	"github.com/okian/recruitiq/internal/config"
	"github.com/okian/recruitiq/internal/demo"
	"github.com/okian/recruitiq/internal/domain/registry"
	"github.com/okian/recruitiq/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout          = 10 * time.Second
	writeTimeout         = 10 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	totalsUpdateInterval = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// The metric registry is fixed, externally configured state.
	metricRegistry, err := registry.New(cfg.Metrics)
	if err != nil {
		os.Stderr.WriteString("invalid metric registry: " + err.Error() + "\n")
		return
	}

	// Select the score store: SQLite when configured, in-memory otherwise.
	var store repository.Store
	if cfg.DBPath != "" {
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			os.Stderr.WriteString("failed to open database: " + err.Error() + "\n")
			return
		}
		defer func() { _ = db.Close() }()
		store = db
		log.Info(ctx, "using sqlite store", logger.String("path", cfg.DBPath))
	} else {
		mem := repository.NewMemStore()
		if cfg.DemoData {
			demo.NewGenerator().Seed(ctx, mem, metricRegistry)
		}
		store = mem
		log.Info(ctx, "using in-memory store", logger.Bool("demo_data", cfg.DemoData))
	}

	svc := app.New(store, metricRegistry,
		app.WithLogger(log),
		app.WithMaxTopN(cfg.MaxTopN),
	)

	// Keep the reporting gauges fresh.
	go startTotalsUpdater(ctx, svc)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startTotalsUpdater periodically refreshes the storage-wide gauges.
func startTotalsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(totalsUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Stats updates the Prometheus gauges as a side effect.
			if _, err := svc.Stats(ctx); err != nil {
				logger.Get().Warn(ctx, "totals refresh failed", logger.Error(err))
			}
		}
	}
}
