package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment = "development"
	defaultPort        = "8080"
	defaultRateLimit   = "100-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	debug, err := parseBool("DEBUG")
	if err != nil {
		return nil, err
	}

	multiline, err := parseBool("DEBUG_MULTILINE")
	if err != nil {
		return nil, err
	}

	port := getOr("PORT", defaultPort)
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", port)
	}

	baseDir := os.Getenv("BASE_DIR")
	if baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			baseDir = wd
		}
	}

	return &Config{
		Environment:    getOr("ENVIRONMENT", defaultEnvironment),
		Port:           port,
		Debug:          debug,
		DebugMultiline: multiline,
		BaseDir:        baseDir,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RateLimit:      getOr("RATE_LIMIT", defaultRateLimit),
	}, nil
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// parses an optional boolean environment variable, unset means false
func parseBool(key string) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}

	return v, nil
}
