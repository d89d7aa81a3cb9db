package config

import (
	"context"
	"testing"
	"time"

	"github.com/sylee999/minifeed/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BASE_URL", "http://store.local")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.Redis.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.Redis.CacheTTL)
	}
	if cfg.Store.BaseURL != "http://store.local" {
		t.Errorf("BaseURL = %q", cfg.Store.BaseURL)
	}
}

func TestLoadRequiredValues(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		secret  string
	}{
		{"missing store url", "", "secret"},
		{"missing jwt secret", "http://store.local", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("STORE_BASE_URL", tc.baseURL)
			t.Setenv("JWT_SECRET", tc.secret)

			_, err := Load(context.Background())
			if !domain.IsKind(err, domain.KindConfiguration) {
				t.Fatalf("Load() error = %v, want configuration kind", err)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BASE_URL", "http://store.local")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("FEED_CACHE_TTL", "2m")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("SessionTTL = %v, want 1h", cfg.SessionTTL)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
	if cfg.Redis.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL = %v, want 2m", cfg.Redis.CacheTTL)
	}
}
