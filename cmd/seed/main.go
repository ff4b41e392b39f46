package main

import (
	"context"
	"log/slog"

	"github.com/heavenofmunroe/backend/internal/config"
	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/heavenofmunroe/backend/internal/logging"
	"github.com/heavenofmunroe/backend/internal/repository"
	"github.com/heavenofmunroe/backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if !cfg.Database.HasDatabase() {
		logging.Fatal("DATABASE_URL is not set; the in-memory repository is seeded by the server at start-up")
	}

	ctx := context.Background()
	conn, err := database.Connect(ctx, database.Options{
		URL:            cfg.Database.URL,
		MaxConns:       4,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		Retry: database.RetryPolicy{
			MaxAttempts: cfg.Database.RetryAttempts,
			BaseDelay:   cfg.Database.RetryBaseDelay,
		},
	})
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer conn.Close()

	res, err := seed.Run(ctx, repository.NewPgRepository(conn))
	if err != nil {
		logging.Fatal("seeding failed", "error", err)
	}
	slog.Info("seeding completed", "created", res.Created, "skipped", res.Skipped)
}
