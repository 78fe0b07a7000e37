package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/shelfwise/shelfwise/internal/devstore"
	"github.com/shelfwise/shelfwise/pkg/config"
	"github.com/shelfwise/shelfwise/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "devstore"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "devstore",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	store := devstore.New()
	if cfg.DevStore.SeedFile != "" {
		if err := store.LoadSeedFile(cfg.DevStore.SeedFile); err != nil {
			logg.Error(context.Background(), "failed to load seed file", err)
			os.Exit(1)
		}
	}

	addr := ":" + cfg.DevStore.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting devstore server")

	server := &http.Server{
		Addr:    addr,
		Handler: devstore.Handler(store, logg),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "devstore server stopped unexpectedly", err)
		os.Exit(1)
	}
}
