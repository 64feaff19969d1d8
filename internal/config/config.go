package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr string
	// DBConnString points at the catalog database. Empty serves the built-in
	// catalog from memory.
	DBConnString    string
	ShutdownTimeout time.Duration
	LogLevel        string

	VoucherRefreshInterval time.Duration
	VoucherCatalogPath     string
	VoucherProductIDBound  int

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	CORSAllowedOrigins []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:               envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:           os.Getenv("DB_DSN"),
		ShutdownTimeout:        envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		LogLevel:               envOrDefault("LOG_LEVEL", "info"),
		VoucherRefreshInterval: envDuration("VOUCHER_REFRESH_SECONDS", 5*time.Minute),
		VoucherCatalogPath:     os.Getenv("VOUCHER_CATALOG_PATH"),
		VoucherProductIDBound:  envInt("VOUCHER_PRODUCT_ID_BOUND", 10),
		SessionTTL:             envDuration("SESSION_TTL_SECONDS", 24*time.Hour),
		SessionSweepInterval:   envDuration("SESSION_SWEEP_SECONDS", time.Minute),
		CORSAllowedOrigins:     envList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
