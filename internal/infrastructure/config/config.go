package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
)

// Config holds process settings read from the environment. A .env file in
// the working directory is loaded first by cmd/api.
type Config struct {
	Port         string
	DBDriver     string
	SQLiteDSN    string
	LogLevel     string
	MarginTarget float64
	MarginFloor  float64
}

func Load() (Config, error) {
	cfg := Config{
		Port:      getenvDefault("PORT", "8080"),
		DBDriver:  strings.ToLower(getenvDefault("DB_DRIVER", DriverDynamoDB)),
		SQLiteDSN: getenvDefault("SQLITE_DSN", "data/painting_crm.sqlite"),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.MarginTarget, err = getenvFloat("MARGIN_TARGET", 40); err != nil {
		return Config{}, err
	}
	if cfg.MarginFloor, err = getenvFloat("MARGIN_FLOOR", 30); err != nil {
		return Config{}, err
	}

	switch cfg.DBDriver {
	case DriverDynamoDB, DriverSQLite:
	case "sqlite3":
		cfg.DBDriver = DriverSQLite
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
