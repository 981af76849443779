package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spinworks/SlotEngine_Go/internal/bootstrap"
	"github.com/spinworks/SlotEngine_Go/internal/config"
	"github.com/spinworks/SlotEngine_Go/internal/database"
	"github.com/spinworks/SlotEngine_Go/internal/engine"
	"github.com/spinworks/SlotEngine_Go/internal/handler"
	"github.com/spinworks/SlotEngine_Go/internal/ledger"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/scheduler"
	"github.com/spinworks/SlotEngine_Go/internal/server"
	"github.com/spinworks/SlotEngine_Go/internal/spin"
	"github.com/spinworks/SlotEngine_Go/internal/theme"
	"github.com/spinworks/SlotEngine_Go/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second

	auditWorkerCount = 1
	auditQueueSize   = 1
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		logger.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	handler.InitValidator()

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		logger.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	var (
		repos  *bootstrap.Repositories
		dbPool *pgxpool.Pool
	)
	if cfg.UseMemoryStorage() {
		logger.Info("Using in-memory storage")
		repos = bootstrap.InitializeMemoryRepositories()
	} else {
		dbPool, err = database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			logger.Error("Database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		repos = bootstrap.InitializePostgresRepositories(dbPool)
	}

	themes := theme.NewRegistry(cfg.ThemesDir)
	ledgerService := ledger.NewService(repos.Ledger, publisher)
	spinService := spin.NewService(engine.New(), themes, repos.Spin, ledgerService, publisher)

	var closers []func()
	if cfg.AuditInterval > 0 {
		pool := worker.NewPool(auditWorkerCount, auditQueueSize)
		pool.Start()
		sched := scheduler.New(pool)
		sched.Schedule(cfg.AuditInterval, worker.NewAuditJob(repos.Spin, spinService, ledgerService, cfg.AuditSweepLimit))
		closers = append(closers, sched.Stop, pool.Stop)
		logger.Info("Audit sweep scheduled", "interval", cfg.AuditInterval, "limit", cfg.AuditSweepLimit)
	}

	// A typed nil *pgxpool.Pool must not end up inside the interface;
	// the readiness check treats a nil interface as "no database".
	var pool database.Pool
	if dbPool != nil {
		pool = dbPool
	}
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, spinService, ledgerService, themes)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		logger.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{Server: srv, Close: closers})
}
