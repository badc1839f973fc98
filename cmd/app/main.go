package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/RouletteCampaign_Go/internal/bootstrap"
	"github.com/osse101/RouletteCampaign_Go/internal/campaign"
	"github.com/osse101/RouletteCampaign_Go/internal/concurrency"
	"github.com/osse101/RouletteCampaign_Go/internal/config"
	"github.com/osse101/RouletteCampaign_Go/internal/cooldown"
	"github.com/osse101/RouletteCampaign_Go/internal/database"
	"github.com/osse101/RouletteCampaign_Go/internal/database/postgres"
	"github.com/osse101/RouletteCampaign_Go/internal/eventlog"
	"github.com/osse101/RouletteCampaign_Go/internal/roulette"
	"github.com/osse101/RouletteCampaign_Go/internal/server"
	"github.com/osse101/RouletteCampaign_Go/internal/spin"
)

// @title Roulette Campaign API
// @version 1.0
// @description Promotional roulette campaigns: spin eligibility, spin recording and award thresholds.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info("Starting RouletteCampaign",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"dev_mode", cfg.DevMode)
	if cfg.DevMode {
		slog.Warn("DEV_MODE is enabled, spin limits are not enforced")
	}
	if err := cfg.ValidatePort(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// The schema check only warns so plain env deployments without a .env file still start
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx := context.Background()

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(ctx, cfg.GetDBConnString()); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	_, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	rouletteService := roulette.NewService(repos.Roulette, cfg.RouletteCacheSize, cfg.RouletteCacheTTL)
	spinService := spin.NewService(
		repos.Spin,
		cooldown.NewLimiter(cooldown.Config{DevMode: cfg.DevMode}),
		concurrency.NewLockManager(),
		resilientPublisher,
	)
	campaignService := campaign.NewService(repos.Campaign, resilientPublisher)
	eventLogService := eventlog.NewService(repos.EventLog)

	handlers, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        resilientPublisher,
		RouletteService: rouletteService,
		EventLogService: eventLogService,
		Config:          cfg,
	})
	if err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	srv := server.NewServer(server.Dependencies{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		DBPool:          dbPool,
		RouletteService: rouletteService,
		SpinService:     spinService,
		CampaignService: campaignService,
		EventLogService: eventLogService,
		Hub:             handlers.Hub,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Handlers:           handlers,
		ResilientPublisher: resilientPublisher,
		DBPool:             dbPool,
	})
}
