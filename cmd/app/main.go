package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/database"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/economy"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/evaluator"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/event"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/generator"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/handler"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/history"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/metrics"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/payout"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/scheduler"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/server"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/spin"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/sse"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/store"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/worker"
)

const (
	deadLetterPath  = "logs/event_deadletter.jsonl"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	// Game configuration, validated up front
	game := config.DefaultGame()
	game.ApplyTimingOverrides(cfg)
	if err := game.Validate(); err != nil {
		slog.Error("Invalid game configuration", "error", err)
		os.Exit(1)
	}

	// Event system: in-memory bus behind a retrying publisher with a
	// dead-letter file for events that exhaust their retries.
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), 0o755); err != nil {
		slog.Error("Failed to create dead-letter directory", "error", err)
		os.Exit(1)
	}
	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		slog.Error("Failed to create dead-letter writer", "error", err)
		os.Exit(1)
	}
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{}, deadLetter)

	// Persistence: PostgreSQL when configured, in-memory otherwise
	var repo store.Repository
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		pool, err := database.NewPool(cfg.DatabaseURL)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		repo = store.NewPostgresRepository(pool)
	} else {
		slog.Info("No DATABASE_URL configured, running with in-memory persistence")
		repo = store.NewMemoryRepository()
	}

	// Economy resumes from the persisted snapshot when one exists
	var economySvc economy.Service
	if snapshot, found, err := repo.LoadSnapshot(context.Background()); err != nil {
		slog.Error("Failed to load economy snapshot", "error", err)
		os.Exit(1)
	} else if found {
		slog.Info("Resuming economy from snapshot",
			"currency", snapshot.Currency,
			"level", snapshot.Level,
			"total_spins", snapshot.TotalSpins)
		economySvc = economy.NewServiceFromSnapshot(game.Economy, game.Stakes, publisher, snapshot)
	} else {
		economySvc = economy.NewService(game.Economy, game.Stakes, publisher)
	}

	// Core engine services
	generatorSvc := generator.NewService(game)
	evaluatorSvc := evaluator.NewService(game.Lines)
	payoutSvc := payout.NewService()
	spinSvc := spin.NewService(game, generatorSvc, evaluatorSvc, payoutSvc, economySvc, publisher)

	// Event consumers
	historySvc := history.NewService(cfg.HistorySize, cfg.HistoryTTL)
	history.SubscribeToBus(bus, historySvc)
	store.SubscribeToBus(bus, repo)
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		slog.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	// Energy regeneration on the worker pool
	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.EnergyRegenInterval, worker.NewEnergyRegenJob(economySvc))

	handler.InitValidator()
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, repo, spinSvc, historySvc, game, hub)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop accepting requests first, then settle the engine, then
	// drain the event pipeline.
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	sched.Stop()
	if err := spinSvc.Shutdown(ctx); err != nil {
		slog.Error("Spin engine shutdown failed", "error", err)
	}
	pool.Stop()
	publisher.Wait()
	hub.Stop()

	if err := deadLetter.Close(); err != nil {
		slog.Error("Dead-letter writer close failed", "error", err)
	}
	repo.Close()

	slog.Info("Shutdown complete")
}
