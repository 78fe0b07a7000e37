package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/shelfwise/shelfwise/internal/auth"
	"github.com/shelfwise/shelfwise/internal/catalog"
	"github.com/shelfwise/shelfwise/internal/cli"
	"github.com/shelfwise/shelfwise/internal/session"
	"github.com/shelfwise/shelfwise/pkg/config"
	"github.com/shelfwise/shelfwise/pkg/logger"
	"github.com/shelfwise/shelfwise/pkg/redis"
	"github.com/shelfwise/shelfwise/pkg/rest"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "client", Output: os.Stderr})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "client",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Output:      os.Stderr,
	})
	ctx := context.Background()

	transport, err := rest.NewClient(cfg.Store.BaseURL, rest.WithTimeout(cfg.Store.Timeout))
	if err != nil {
		logg.Error(ctx, "failed to build store transport", err)
		os.Exit(1)
	}

	catalogClient, err := catalog.NewClient(transport)
	if err != nil {
		logg.Error(ctx, "failed to build catalog client", err)
		os.Exit(1)
	}

	sessionStore := newSessionStore(ctx, cfg, logg)

	authService, err := auth.NewService(auth.ServiceParams{
		Users:   catalogClient,
		Session: sessionStore,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to build auth service", err)
		os.Exit(1)
	}

	app, err := cli.NewApp(cli.AppParams{
		Auth:              authService,
		Catalog:           catalogClient,
		Logger:            logg,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		Input:             os.Stdin,
		Output:            os.Stdout,
	})
	if err != nil {
		logg.Error(ctx, "failed to build client", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logg.Error(ctx, "client stopped unexpectedly", err)
		os.Exit(1)
	}
}

// newSessionStore prefers the redis-backed slot and falls back to process
// memory when redis is unreachable, so the client still works offline.
func newSessionStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) session.Store {
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logg.Warn(ctx, "redis unavailable, session will not survive restarts")
		return session.NewMemoryStore()
	}
	if err := redisClient.Ping(ctx); err != nil {
		logg.Warn(ctx, "redis unreachable, session will not survive restarts")
		return session.NewMemoryStore()
	}
	return session.NewRedisStore(redisClient)
}
