package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/getgifts/starcase/internal/bootstrap"
	"github.com/getgifts/starcase/internal/cases"
	"github.com/getgifts/starcase/internal/catalog"
	"github.com/getgifts/starcase/internal/config"
	"github.com/getgifts/starcase/internal/craft"
	"github.com/getgifts/starcase/internal/database"
	"github.com/getgifts/starcase/internal/database/postgres"
	"github.com/getgifts/starcase/internal/engine"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/handler"
	"github.com/getgifts/starcase/internal/ledger"
	"github.com/getgifts/starcase/internal/metrics"
	"github.com/getgifts/starcase/internal/pvp"
	"github.com/getgifts/starcase/internal/repository"
	"github.com/getgifts/starcase/internal/server"
	"github.com/getgifts/starcase/internal/upgrade"
	"github.com/getgifts/starcase/internal/wallet"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logFile.Close()

	slog.Info("Starting starcase",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	pool, err := database.NewDefaultPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// The cache sits in front of the repository so every service that spends
	// or credits invalidates it on commit.
	repo := repository.NewCachedLedger(postgres.NewLedgerRepository(pool))
	eng := engine.New()

	// Events flow through the resilient publisher so a slow subscriber can
	// never fail a player request.
	deadLetter, err := event.NewDeadLetterWriter(filepath.Join(cfg.LogDir, "deadletter.jsonl"))
	if err != nil {
		slog.Error("Failed to open dead letter file", "error", err)
		os.Exit(1)
	}
	bus := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{
		DeadLetter: deadLetter,
	})

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		slog.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	pvpService := pvp.NewService(repo, eng, bus, cfg.PvPJoinTimeout)
	svcs := server.Services{
		Ledger:  ledger.NewService(repo, cat, bus),
		Wallet:  wallet.NewService(repo, wallet.NewStubProvider(), bus),
		Cases:   cases.NewService(repo, cat, eng, bus),
		Upgrade: upgrade.NewService(repo, cat, eng, bus),
		Craft:   craft.NewService(repo, cat, eng, bus),
		PvP:     pvpService,
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, svcs)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		PvPService: pvpService,
	})
}
