package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outreach-engine/internal/adapter/dispatch"
	httpadapter "outreach-engine/internal/adapter/http"
	"outreach-engine/internal/adapter/postgres"
	"outreach-engine/internal/adapter/usecase"
	"outreach-engine/internal/config"
	"outreach-engine/internal/core/outreach"
	"outreach-engine/internal/db"
)

// main loads configuration, optionally runs migrations and seeding,
// wires the repositories, engine, monitor loop and HTTP server, then
// blocks until a termination signal arrives and shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seeding error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo providers seeded")
	}

	store := postgres.NewCampaignRepository(pool)
	providers := postgres.NewProviderRepository(pool)

	engine, err := usecase.NewEngine(usecase.Deps{
		Store:        store,
		Availability: providers,
		Progress:     providers,
		Selector:     providers,
		Composer:     dispatch.NewTemplateComposer(store),
		Dispatcher:   dispatch.NewWebhookDispatcher(cfg.Dispatch),
		Logger:       logger,
	}, outreach.DefaultParams())
	if err != nil {
		logger.Error("engine init error", slog.Any("error", err))
		os.Exit(1)
	}

	monitor := usecase.NewMonitor(engine, store, cfg.Monitor, logger)
	go monitor.Run(ctx)

	handler := httpadapter.NewHandler(engine, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))
	cancel() // stop the monitor loop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
