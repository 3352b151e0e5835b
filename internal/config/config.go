package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Config struct {
	DBPath    string
	LogLevel  string
	LogFormat string
	Output    string
	DueLimit  int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the tool still runs when .env is absent.
	_ = godotenv.Load()

	return Config{
		DBPath:    envOr("SREP_DB_PATH", DefaultDBPath()),
		LogLevel:  envOr("SREP_LOG_LEVEL", "WARN"),
		LogFormat: envOr("SREP_LOG_FORMAT", LogFormatConsole),
		Output:    envOr("SREP_OUTPUT", OutputTable),
		DueLimit:  envIntOr("SREP_DUE_LIMIT", 20),
	}
}

// DefaultDBPath places the database under the XDG data directory.
func DefaultDBPath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "srep", "srep.db")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "srep", "srep.db")
	}
	return "srep.db"
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("SREP_DB_PATH cannot be empty"))
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("SREP_LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("SREP_LOG_FORMAT must be console or json (got %q)", c.LogFormat))
	}

	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("SREP_OUTPUT must be table, json or yaml (got %q)", c.Output))
	}

	if c.DueLimit < 1 {
		errs = append(errs, fmt.Errorf("SREP_DUE_LIMIT must be positive (got %d)", c.DueLimit))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
