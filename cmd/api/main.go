package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cribnosh/nosh-backend/api/routes"
	"github.com/cribnosh/nosh-backend/internal/connections"
	"github.com/cribnosh/nosh-backend/internal/grouporders"
	"github.com/cribnosh/nosh-backend/internal/orders"
	"github.com/cribnosh/nosh-backend/internal/users"
	"github.com/cribnosh/nosh-backend/pkg/config"
	"github.com/cribnosh/nosh-backend/pkg/db"
	"github.com/cribnosh/nosh-backend/pkg/logger"
	"github.com/cribnosh/nosh-backend/pkg/metrics"
	"github.com/cribnosh/nosh-backend/pkg/migrate"
	"github.com/cribnosh/nosh-backend/pkg/redis"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	userRepo := users.NewRepository(dbClient.DB())

	connectionsService, err := connections.NewService(
		connections.NewRepository(dbClient.DB()),
		dbClient,
		userRepo,
		users.Initials,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create connections service", err)
		os.Exit(1)
	}

	groupOrdersService, err := grouporders.NewService(
		grouporders.NewRepository(dbClient.DB()),
		orders.NewRepository(dbClient.DB()),
		userRepo,
		connectionsService,
		dbClient,
		cfg.GroupOrders,
		logg,
		metrics.NewGroupOrderMetrics(prometheus.DefaultRegisterer),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create group orders service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, groupOrdersService, connectionsService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
