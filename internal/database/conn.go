package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heavenofmunroe/backend/internal/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable is returned when an operation needs the database but the
// connection manager holds no live pool.
var ErrUnavailable = errors.New("storage unavailable")

const (
	defaultPingTimeout = 5 * time.Second
	// pingGrace is added to the connect timeout for the round trip after dial.
	pingGrace = 2 * time.Second
)

// errAttemptTimeout marks a connect attempt that ran out its own deadline while
// the caller's context was still live. Unlike a cancelled caller it is retried.
var errAttemptTimeout = errors.New("connect attempt timed out")

// pingTimeout bounds one startup ping. It must cover a full dial, so it
// follows the configured connect timeout.
func pingTimeout(connectTimeout time.Duration) time.Duration {
	if connectTimeout <= 0 {
		return defaultPingTimeout
	}
	return connectTimeout + pingGrace
}

// pingAttempt runs ping under its own deadline.
func pingAttempt(ctx context.Context, timeout time.Duration, ping func(context.Context) error) error {
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	err := ping(pctx)
	if err != nil && ctx.Err() == nil && errors.Is(pctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %v", errAttemptTimeout, timeout, err)
	}
	return err
}

// Options configures Connect.
type Options struct {
	URL            string
	MaxConns       int32
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
	Retry          RetryPolicy
}

// Conn owns the process-wide PostgreSQL pool. A Conn without a pool is valid:
// it reports Live() == false and every Run fails with ErrUnavailable.
type Conn struct {
	mu    sync.RWMutex
	pool  *pgxpool.Pool
	retry RetryPolicy
}

// Connect opens and pings a pool for opts.URL. When opts.URL is empty it logs a
// notice and returns a Conn without a pool. On failure the returned Conn is
// still non-nil (and not live) so callers can continue in degraded mode.
func Connect(ctx context.Context, opts Options) (*Conn, error) {
	c := &Conn{retry: opts.Retry}
	if opts.URL == "" {
		slog.Warn("DATABASE_URL not set; running without database connection")
		return c, nil
	}

	cfg, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return c, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.IdleTimeout > 0 {
		cfg.MaxConnIdleTime = opts.IdleTimeout
	}
	if opts.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return c, fmt.Errorf("create pool: %w", err)
	}

	timeout := pingTimeout(opts.ConnectTimeout)
	_, err = WithRetry(ctx, opts.Retry, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, pingAttempt(ctx, timeout, pool.Ping)
	})
	if err != nil {
		pool.Close()
		return c, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connected",
		"max_conns", cfg.MaxConns,
		"idle_timeout", cfg.MaxConnIdleTime.String(),
		"connect_timeout", cfg.ConnConfig.ConnectTimeout.String(),
	)
	c.pool = pool
	return c, nil
}

// NewConn wraps an existing pool. A nil pool yields a Conn that is not live.
func NewConn(pool *pgxpool.Pool, retry RetryPolicy) *Conn {
	return &Conn{pool: pool, retry: retry}
}

// Live reports whether a pool is held.
func (c *Conn) Live() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool != nil
}

// Pool returns the live pool or ErrUnavailable.
func (c *Conn) Pool() (*pgxpool.Pool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pool == nil {
		return nil, ErrUnavailable
	}
	return c.pool, nil
}

// Ping checks the pool, or fails with ErrUnavailable when there is none.
func (c *Conn) Ping(ctx context.Context) error {
	pool, err := c.Pool()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	return pool.Ping(ctx)
}

// Close releases the pool. Later calls to Run fail with ErrUnavailable.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}

// Run executes fn against the live pool under the connection's retry policy
// and records the outcome as the named database operation.
func Run[T any](ctx context.Context, c *Conn, operation string, fn func(ctx context.Context, pool *pgxpool.Pool) (T, error)) (T, error) {
	pool, err := c.Pool()
	if err != nil {
		var zero T
		return zero, err
	}

	policy := c.retry
	policy.OnRetry = func(int, time.Duration, error) { metrics.RecordDBRetry(operation) }

	start := time.Now()
	v, err := WithRetry(ctx, policy, func(ctx context.Context) (T, error) {
		return fn(ctx, pool)
	})
	metrics.RecordDBQuery(operation, time.Since(start), err)
	return v, err
}
