package repository

import (
	"log/slog"

	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/heavenofmunroe/backend/internal/metrics"
)

// New selects the repository implementation for conn. A live connection gets
// the PostgreSQL repository; a nil or degraded one falls back to memory.
func New(conn *database.Conn) Repository {
	var repo Repository
	if conn != nil && conn.Live() {
		repo = NewPgRepository(conn)
	} else {
		slog.Warn("no database connection, using in-memory repository; data will not survive a restart")
		repo = NewMemoryRepository()
	}
	metrics.SetRepositoryMode(repo.Mode())
	slog.Info("repository selected", "mode", repo.Mode())
	return repo
}
