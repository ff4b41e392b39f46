package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dropAllFile      = "000_drop_all.sql"
	consolidatedFile = "000_consolidated.sql"
)

// Migrator applies the numbered *.up.sql files in dir and records them in
// schema_migrations.
type Migrator struct {
	pool *pgxpool.Pool
	dir  string
}

// NewMigrator returns a Migrator reading SQL files from dir.
func NewMigrator(pool *pgxpool.Pool, dir string) *Migrator {
	return &Migrator{pool: pool, dir: dir}
}

// FindMigrationDir returns dir, or ../dir when the binary runs from a
// subdirectory of the repository.
func FindMigrationDir(dir string) string {
	if _, err := os.Stat(dir); os.IsNotExist(err) && !filepath.IsAbs(dir) {
		return filepath.Join("..", dir)
	}
	return dir
}

// upFiles returns the .up.sql file names sorted.
func (m *Migrator) upFiles() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func (m *Migrator) ensureSchemaMigrations(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	return err
}

func (m *Migrator) execFile(ctx context.Context, name string) error {
	sql, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if _, err := m.pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	return nil
}

// Up applies every migration not yet recorded and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureSchemaMigrations(ctx); err != nil {
		return 0, err
	}
	files, err := m.upFiles()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, filename := range files {
		name := strings.TrimSuffix(filename, ".up.sql")

		var exists bool
		if err := m.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists); err != nil {
			return applied, err
		}
		if exists {
			continue
		}
		if err := m.execFile(ctx, filename); err != nil {
			return applied, err
		}
		if _, err := m.pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			return applied, fmt.Errorf("record %s: %w", name, err)
		}
		applied++
		slog.Info("migration completed", "migration", name)
	}
	return applied, nil
}

// DropAll drops every application table.
func (m *Migrator) DropAll(ctx context.Context) error {
	slog.Info("dropping all tables")
	return m.execFile(ctx, dropAllFile)
}

// ApplyConsolidated creates the schema from the consolidated file and marks
// every migration as applied.
func (m *Migrator) ApplyConsolidated(ctx context.Context) (int, error) {
	if err := m.execFile(ctx, consolidatedFile); err != nil {
		return 0, err
	}
	if err := m.ensureSchemaMigrations(ctx); err != nil {
		return 0, err
	}
	files, err := m.upFiles()
	if err != nil {
		return 0, err
	}
	for _, filename := range files {
		name := strings.TrimSuffix(filename, ".up.sql")
		if _, err := m.pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}
