// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DestinationAPIURL is the base URL of the REST Countries API.
	// Defaults to the public endpoint; point it at a stub in tests.
	DestinationAPIURL string

	// DestinationTimeout bounds each lookup HTTP request.
	// Set DESTINATION_TIMEOUT_SECONDS to override the 5-second default.
	DestinationTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Every value has a default, so Load only fails on values that are set but
// unparseable.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DestinationAPIURL: getEnv("DESTINATION_API_URL", "https://restcountries.com"),
	}

	seconds := getEnv("DESTINATION_TIMEOUT_SECONDS", "5")
	n, err := strconv.Atoi(seconds)
	if err != nil || n <= 0 {
		return Config{}, fmt.Errorf("DESTINATION_TIMEOUT_SECONDS must be a positive integer, got %q", seconds)
	}
	cfg.DestinationTimeout = time.Duration(n) * time.Second

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
