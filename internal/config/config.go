// Package config resolves process configuration from the environment.
// User-facing preferences (currency, language, rates) are persisted app
// state instead, owned by the settings package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// DBPath is the location of the snapshot database.
	DBPath string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. The database defaults to ~/.punchclock/punchclock.db.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath: getEnv("PUNCHCLOCK_DB", ""),
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".punchclock", "punchclock.db")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
