package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "GRPC_PORT", "DB_DRIVER", "SESSION_TTL", "KAFKA_BROKERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.HTTPPort != 8080 || cfg.GRPCPort != 8081 {
		t.Fatalf("ports = %d/%d", cfg.HTTPPort, cfg.GRPCPort)
	}
	if cfg.DB.Driver != "postgres" {
		t.Fatalf("driver = %q", cfg.DB.Driver)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("session ttl = %s", cfg.SessionTTL)
	}
	if !cfg.IsDev() {
		t.Fatal("expected dev env by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("GRPC_PORT", "not-a-number")

	cfg := Load()
	if cfg.IsDev() {
		t.Fatal("prod must not be dev")
	}
	if cfg.HTTPPort != 9000 {
		t.Fatalf("http port = %d", cfg.HTTPPort)
	}
	if cfg.GRPCPort != 8081 {
		t.Fatalf("bad int should fall back, got %d", cfg.GRPCPort)
	}
	if cfg.SessionTTL != 30*time.Minute || !cfg.CookieSecure {
		t.Fatalf("ttl=%s secure=%v", cfg.SessionTTL, cfg.CookieSecure)
	}
}
