package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "LOG_LEVEL", "HTTP_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Addr())
	}
	if !cfg.IsDevelopment() || cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected development defaults, got %s / %s", cfg.Env, cfg.SlogLevel())
	}
	if cfg.HTTPTimeout != 10*time.Second || cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 5 {
		t.Errorf("unexpected client defaults %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "1")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("OPEN_METEO_FORECAST_URL", "http://localhost:9999/forecast")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":9090" || cfg.IsDevelopment() {
		t.Errorf("unexpected server config %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("expected warn, got %s", cfg.SlogLevel())
	}
	if cfg.HTTPTimeout != 3*time.Second || cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 1 {
		t.Errorf("unexpected client config %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
	if cfg.ForecastURL != "http://localhost:9999/forecast" {
		t.Errorf("unexpected forecast url %s", cfg.ForecastURL)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "HTTP_TIMEOUT", value: "ten"},
		{key: "RATE_LIMIT_RPS", value: "fast"},
		{key: "RATE_LIMIT_BURST", value: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
