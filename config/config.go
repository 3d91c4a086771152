// Package config loads runtime settings for the cranes command and HTTP
// server from the environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrBadConfig indicates an environment variable with an unusable value.
var ErrBadConfig = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAlgorithm    = "CRANES_ALGORITHM"
	EnvLogLevel     = "CRANES_LOG_LEVEL"
	EnvLogFormat    = "CRANES_LOG_FORMAT"
	EnvHTTPAddr     = "CRANES_HTTP_ADDR"
	EnvGinMode      = "CRANES_GIN_MODE"
	EnvProfile      = "CRANES_PROFILE"
	EnvMaxGridCells = "CRANES_MAX_GRID_CELLS"
	EnvMaxMoves     = "CRANES_MAX_EXHAUSTIVE_MOVES"
	EnvMaxTable     = "CRANES_MAX_TABLE_STEPS"
	EnvMaxBody      = "CRANES_MAX_BODY_BYTES"
)

// Config holds the application's configuration values.
type Config struct {
	Algorithm    string // Default solver name, see cranes.ParseAlgorithm
	LogLevel     string // logrus level name
	LogFormat    string // "text" or "json"
	HTTPAddr     string // Listen address for the HTTP API
	GinMode      string // gin mode: release, debug or test
	Profile      string // "", "cpu" or "mem"
	MaxGridCells int    // Largest rows×columns accepted over HTTP
	MaxMoves     int    // Largest rows+columns-2 the exhaustive solver runs over HTTP
	MaxTable     int    // Largest rows·columns·(rows+columns-1) the DP table may hold over HTTP
	MaxBodyBytes int64  // Largest HTTP request body
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Algorithm:    "dynprog",
		LogLevel:     "info",
		LogFormat:    "text",
		HTTPAddr:     ":8080",
		GinMode:      "release",
		Profile:      "",
		MaxGridCells: 10000,
		MaxMoves:     24,
		MaxTable:     2_000_000,
		MaxBodyBytes: 1 << 20,
	}
}

// Load reads .env files (if present) into the environment without
// overriding variables that are already set, then builds a Config from
// the environment on top of Default. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.Algorithm = getEnvWithDefault(EnvAlgorithm, cfg.Algorithm)
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)

	var err error
	if cfg.LogFormat, err = getEnvOneOf(EnvLogFormat, cfg.LogFormat, "text", "json"); err != nil {
		return Config{}, err
	}
	if cfg.GinMode, err = getEnvOneOf(EnvGinMode, cfg.GinMode, "release", "debug", "test"); err != nil {
		return Config{}, err
	}
	if cfg.Profile, err = getEnvOneOf(EnvProfile, cfg.Profile, "", "cpu", "mem"); err != nil {
		return Config{}, err
	}
	if cfg.MaxGridCells, err = getEnvAsInt(EnvMaxGridCells, cfg.MaxGridCells); err != nil {
		return Config{}, err
	}
	if cfg.MaxGridCells <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrBadConfig, EnvMaxGridCells, cfg.MaxGridCells)
	}
	if cfg.MaxMoves, err = getEnvAsInt(EnvMaxMoves, cfg.MaxMoves); err != nil {
		return Config{}, err
	}
	if cfg.MaxMoves < 0 {
		return Config{}, fmt.Errorf("%w: %s must not be negative, got %d", ErrBadConfig, EnvMaxMoves, cfg.MaxMoves)
	}
	if cfg.MaxTable, err = getEnvAsInt(EnvMaxTable, cfg.MaxTable); err != nil {
		return Config{}, err
	}
	if cfg.MaxTable <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrBadConfig, EnvMaxTable, cfg.MaxTable)
	}
	maxBody, err := getEnvAsInt(EnvMaxBody, int(cfg.MaxBodyBytes))
	if err != nil {
		return Config{}, err
	}
	if maxBody <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrBadConfig, EnvMaxBody, maxBody)
	}
	cfg.MaxBodyBytes = int64(maxBody)

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, or defaultValue if unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrBadConfig, key, err)
	}
	return value, nil
}

// getEnvOneOf retrieves a lower-cased environment variable restricted to allowed.
func getEnvOneOf(key, defaultValue string, allowed ...string) (string, error) {
	value := strings.ToLower(getEnvWithDefault(key, defaultValue))
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %s=%q, want one of %q", ErrBadConfig, key, value, allowed)
}
