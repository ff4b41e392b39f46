package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heavenofmunroe/backend/internal/config"
	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/heavenofmunroe/backend/internal/handler"
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

	ctx := context.Background()

	// A failed connection is not fatal: the repository factory falls back to
	// memory and the health endpoint reports it.
	conn, err := database.Connect(ctx, database.Options{
		URL:            cfg.Database.URL,
		MaxConns:       cfg.Database.MaxConns,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		IdleTimeout:    cfg.Database.IdleTimeout,
		Retry: database.RetryPolicy{
			MaxAttempts: cfg.Database.RetryAttempts,
			BaseDelay:   cfg.Database.RetryBaseDelay,
		},
	})
	if err != nil {
		slog.Error("database connection failed, continuing without database", "error", err)
	}
	defer conn.Close()

	repo := repository.New(conn)
	if repo.Mode() == repository.ModeMemory {
		if _, err := seed.Run(ctx, repo); err != nil {
			slog.Error("seeding in-memory repository failed", "error", err)
		}
	}

	if cfg.Admin.Token == "" {
		slog.Warn("ADMIN_TOKEN not set; admin endpoints are open")
	}

	rl := handler.NewRateLimiter(cfg.App.RateLimitPerMinute)
	defer rl.Close()

	server := &http.Server{
		Addr: cfg.App.Addr(),
		Handler: handler.NewRouter(handler.RouterConfig{
			Repository:  repo,
			FrontendURL: cfg.App.FrontendURL,
			AdminToken:  cfg.Admin.Token,
			RateLimiter: rl,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "storage", repo.Mode())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
