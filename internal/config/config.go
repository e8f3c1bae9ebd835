package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	BackendSupabase = "supabase"
	BackendSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	// StoreBackend selects where records live: the hosted Supabase
	// project or a local sqlite file.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"supabase"`

	SupabaseURL        string `env:"SUPABASE_URL"`
	SupabaseAnonKey    string `env:"SUPABASE_ANON_KEY"`
	SupabaseServiceKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/rsvp.db"`

	AdminSecretKey  string        `env:"ADMIN_SECRET_KEY"`
	AdminSessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"1h"`
}

// Load reads configuration from environment variables and verifies the
// selected store backend is fully configured. Missing store
// configuration is fatal for the caller.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.StoreBackend {
	case BackendSupabase:
		if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" || cfg.SupabaseServiceKey == "" {
			return Config{}, fmt.Errorf("missing Supabase environment variables")
		}
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			return Config{}, fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if cfg.AdminSecretKey == "" {
		return Config{}, fmt.Errorf("ADMIN_SECRET_KEY is required")
	}

	return cfg, nil
}
