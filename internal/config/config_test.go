package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_DSN", "SHUTDOWN_TIMEOUT_SECONDS", "LOG_LEVEL", "VOUCHER_REFRESH_SECONDS",
		"VOUCHER_CATALOG_PATH", "VOUCHER_PRODUCT_ID_BOUND", "SESSION_TTL_SECONDS", "SESSION_SWEEP_SECONDS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" || cfg.DBConnString != "" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.VoucherRefreshInterval != 5*time.Minute || cfg.VoucherProductIDBound != 10 {
		t.Fatalf("unexpected voucher defaults %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour || cfg.SessionSweepInterval != time.Minute {
		t.Fatalf("unexpected session defaults %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors defaults %v", cfg.CORSAllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DSN", "postgres://x")
	t.Setenv("VOUCHER_REFRESH_SECONDS", "30")
	t.Setenv("VOUCHER_PRODUCT_ID_BOUND", "24")
	t.Setenv("SESSION_TTL_SECONDS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example, ,https://admin.example")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" || cfg.DBConnString != "postgres://x" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.VoucherRefreshInterval != 30*time.Second || cfg.VoucherProductIDBound != 24 {
		t.Fatalf("unexpected voucher overrides %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("invalid ttl should fall back to default, got %v", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.example" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}
