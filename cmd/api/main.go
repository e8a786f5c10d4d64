package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smoralesdev/franchise-backend/api/routes"
	"github.com/smoralesdev/franchise-backend/internal/branches"
	"github.com/smoralesdev/franchise-backend/internal/franchises"
	"github.com/smoralesdev/franchise-backend/internal/products"
	"github.com/smoralesdev/franchise-backend/pkg/config"
	"github.com/smoralesdev/franchise-backend/pkg/db"
	"github.com/smoralesdev/franchise-backend/pkg/logger"
	"github.com/smoralesdev/franchise-backend/pkg/metrics"
	"github.com/smoralesdev/franchise-backend/pkg/migrate"
	"github.com/smoralesdev/franchise-backend/pkg/resilience"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// One policy instance guards the database as a whole: the breaker window
	// and the permit pool are shared across every repository.
	policy, err := resilience.New(resilience.Config{
		Timeout:        cfg.Resilience.Timeout,
		MaxConcurrent:  cfg.Resilience.MaxConcurrent,
		WindowSize:     cfg.Resilience.WindowSize,
		FailureRatio:   cfg.Resilience.FailureRatio,
		OpenCooldown:   cfg.Resilience.OpenCooldown,
		HalfOpenProbes: cfg.Resilience.HalfOpenProbes,
	},
		resilience.WithMetrics(resilience.NewMetrics(registry)),
		// an absent row is an answer, not database trouble
		resilience.WithIgnoredErrors(db.IsNotFound),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build resilience policy", err)
		os.Exit(1)
	}

	franchiseRepo := franchises.NewRepository(dbClient.DB(), policy)
	branchRepo := branches.NewRepository(dbClient.DB(), policy)
	productRepo := products.NewRepository(dbClient.DB(), policy)

	franchiseService, err := franchises.NewService(franchiseRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create franchise service", err)
		os.Exit(1)
	}

	branchService, err := branches.NewService(branchRepo, franchiseRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create branch service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(productRepo, branchRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			franchiseService,
			branchService,
			productService,
			httpMetrics,
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
