// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store kinds accepted by DOSETRACK_STORE.
const (
	StoreMemory   = "memory"
	StoreBolt     = "bolt"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config is the runtime configuration of the dosetrack server.
type Config struct {
	Addr         string        `env:"DOSETRACK_ADDR" envDefault:":8080"`
	WebDir       string        `env:"DOSETRACK_WEB_DIR" envDefault:"web"`
	Store        string        `env:"DOSETRACK_STORE" envDefault:"bolt"`
	DataPath     string        `env:"DOSETRACK_DATA_PATH" envDefault:"data/dosetrack.db"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Reminders    bool          `env:"DOSETRACK_REMINDERS" envDefault:"true"`
	ReminderLead time.Duration `env:"DOSETRACK_REMINDER_LEAD" envDefault:"0s"`
	Metrics      bool          `env:"DOSETRACK_METRICS" envDefault:"true"`
	// WriteRate is the sustained rate of mutating API requests per second.
	WriteRate  float64 `env:"DOSETRACK_WRITE_RATE" envDefault:"10"`
	WriteBurst int     `env:"DOSETRACK_WRITE_BURST" envDefault:"20"`
}

// Load reads the given dotenv files (".env" when none are named) and then
// parses the environment. Variables already set win over file values, and
// a missing file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreBolt, StoreSQLite:
	case StoreRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis store")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.ReminderLead < 0 {
		return fmt.Errorf("reminder lead must not be negative, got %s", c.ReminderLead)
	}
	if c.WriteRate <= 0 || c.WriteBurst <= 0 {
		return errors.New("write rate and burst must be positive")
	}
	return nil
}
