package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Log      LogConfig
}

// AppConfig holds HTTP server configuration
type AppConfig struct {
	Host               string
	Port               string
	FrontendURL        string
	RateLimitPerMinute int
}

// DatabaseConfig holds the optional PostgreSQL settings. An empty URL selects
// the in-memory repository.
type DatabaseConfig struct {
	URL            string
	MaxConns       int32
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
	MigrationsDir  string
}

// AdminConfig holds the bearer token guarding content writes.
type AdminConfig struct {
	Token string
}

// LogConfig holds slog settings
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, after loading .env files
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var errs []string
	cfg := &Config{
		App: AppConfig{
			Host:               getEnv("HOST", "0.0.0.0"),
			Port:               getEnv("PORT", "8080"),
			FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 20, &errs),
		},
		Database: DatabaseConfig{
			URL:            strings.TrimSpace(os.Getenv("DATABASE_URL")),
			MaxConns:       int32(getEnvAsInt("DB_MAX_CONNS", 20, &errs)),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", 10*time.Second, &errs),
			IdleTimeout:    getEnvAsDuration("DB_IDLE_TIMEOUT", 30*time.Second, &errs),
			RetryAttempts:  getEnvAsInt("DB_RETRY_ATTEMPTS", 3, &errs),
			RetryBaseDelay: getEnvAsDuration("DB_RETRY_BASE_DELAY", time.Second, &errs),
			MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),
		},
		Admin: AdminConfig{
			Token: os.Getenv("ADMIN_TOKEN"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "INFO"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.App.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.Database.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be greater than 0")
	}
	if cfg.Database.RetryAttempts < 1 {
		return fmt.Errorf("DB_RETRY_ATTEMPTS must be at least 1")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

const (
	minWriteTimeout = 15 * time.Second
	// writeMargin leaves room to encode the 503 after the last retry gives up.
	writeMargin = 5 * time.Second
)

// RetryBudget is the longest a database operation can keep failing to connect:
// every attempt dialling until ConnectTimeout, plus the backoff in between.
func (c *DatabaseConfig) RetryBudget() time.Duration {
	var backoff time.Duration
	for n := 1; n < c.RetryAttempts; n++ {
		backoff += c.RetryBaseDelay << (n - 1)
	}
	return time.Duration(c.RetryAttempts)*c.ConnectTimeout + backoff
}

// WriteTimeout is the HTTP server write timeout. With a database configured it
// outlasts the retry budget, so a request that exhausts it still gets its 503.
func (c *Config) WriteTimeout() time.Duration {
	if !c.Database.HasDatabase() {
		return minWriteTimeout
	}
	return max(minWriteTimeout, c.Database.RetryBudget()+writeMargin)
}

// HasDatabase reports whether a connection string was supplied.
func (c *DatabaseConfig) HasDatabase() bool {
	return c.URL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int, errs *[]string) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: %q is not an integer", key, valueStr))
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("1500ms", "10s") or a bare number of
// milliseconds.
func getEnvAsDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: %q is not a duration", key, valueStr))
		return defaultValue
	}
	return value
}
