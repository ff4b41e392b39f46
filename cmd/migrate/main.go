package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heavenofmunroe/backend/internal/config"
	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/heavenofmunroe/backend/internal/logging"
	"github.com/jackc/pgx/v5/pgxpool"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   apply pending migrations
  reset       drop every table and recreate from the consolidated schema
  fresh       drop every table and apply every migration in order`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if !cfg.Database.HasDatabase() {
		logging.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	m := database.NewMigrator(pool, database.FindMigrationDir(cfg.Database.MigrationsDir))

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		runUp(ctx, m)
	case "reset":
		dropAll(ctx, m)
		n, err := m.ApplyConsolidated(ctx)
		if err != nil {
			logging.Fatal("consolidated apply failed", "error", err)
		}
		slog.Info("consolidated schema applied", "migrations_marked", n)
	case "fresh":
		dropAll(ctx, m)
		runUp(ctx, m)
	default:
		usage()
	}
}

func dropAll(ctx context.Context, m *database.Migrator) {
	if err := m.DropAll(ctx); err != nil {
		logging.Fatal("drop all failed", "error", err)
	}
	slog.Info("all tables dropped")
}

func runUp(ctx context.Context, m *database.Migrator) {
	applied, err := m.Up(ctx)
	if err != nil {
		logging.Fatal("migration failed", "applied", applied, "error", err)
	}
	if applied == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", applied)
	}
}
