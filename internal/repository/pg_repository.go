package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgRepository is the PostgreSQL implementation of Repository. Every query
// goes through database.Run, so transient connection failures are retried
// and a degraded connection yields ErrStorageUnavailable.
type PgRepository struct {
	conn *database.Conn
}

// NewPgRepository creates a PgRepository backed by conn.
func NewPgRepository(conn *database.Conn) *PgRepository {
	return &PgRepository{conn: conn}
}

// Ensure PgRepository implements Repository at compile time.
var _ Repository = (*PgRepository)(nil)

func (r *PgRepository) Mode() string { return ModePostgres }

func (r *PgRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// scanner is satisfied by pgx.Row and pgx.CollectableRow.
type scanner interface {
	Scan(dest ...any) error
}

const uniqueViolation = "23505"

// mapError translates driver errors into the package sentinels.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}

// column is a named, typed column of a singleton table. The type is used to
// cast bind parameters, which Postgres cannot infer inside COALESCE.
type column struct {
	name string
	typ  string
}

// singletonUpsertSQL builds an atomic upsert for a table holding at most one
// row under singleton_key = 'default'. Parameters $1..$n are the caller's
// values (NULL = not supplied) and $n+1..$2n the defaults for a fresh row.
//
// An active row keeps every column the caller left NULL. An inactive row is
// reset to defaults before the caller's values are applied, as if inserted.
func singletonUpsertSQL(table string, cols []column, returning string) string {
	n := len(cols)
	names := make([]string, 0, n)
	values := make([]string, 0, n)
	sets := make([]string, 0, n+1)
	for i, c := range cols {
		in := fmt.Sprintf("$%d::%s", i+1, c.typ)
		def := fmt.Sprintf("$%d::%s", n+i+1, c.typ)
		names = append(names, c.name)
		values = append(values, fmt.Sprintf("COALESCE(%s, %s)", in, def))
		sets = append(sets, fmt.Sprintf("%[1]s = CASE WHEN %[2]s.is_active THEN COALESCE(%[3]s, %[2]s.%[1]s) ELSE EXCLUDED.%[1]s END",
			c.name, table, in))
	}
	sets = append(sets, "updated_at = NOW()")
	return fmt.Sprintf(`INSERT INTO %s (singleton_key, %s)
		VALUES ('default', %s)
		ON CONFLICT (singleton_key) DO UPDATE SET %s
		RETURNING %s`,
		table, strings.Join(names, ", "), strings.Join(values, ", "), strings.Join(sets, ", "), returning)
}
