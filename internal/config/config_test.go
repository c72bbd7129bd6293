package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/analytics")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.SessionGap != 900*time.Second {
		t.Errorf("unexpected session gap %v", cfg.SessionGap)
	}
	if cfg.SearchWindow != time.Hour {
		t.Errorf("unexpected search window %v", cfg.SearchWindow)
	}
	if cfg.LogCity {
		t.Error("city logging must be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SESSION_GAP_SECONDS", "600")
	t.Setenv("SESSION_SEARCH_WINDOW_SECONDS", "7200")
	t.Setenv("LOG_CITY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.SessionGap != 600*time.Second {
		t.Errorf("unexpected session gap %v", cfg.SessionGap)
	}
	if cfg.SearchWindow != 2*time.Hour {
		t.Errorf("unexpected search window %v", cfg.SearchWindow)
	}
	if !cfg.LogCity {
		t.Error("expected city logging to be enabled")
	}
}

func TestLoad_IgnoresInvalidDurations(t *testing.T) {
	t.Setenv("SESSION_GAP_SECONDS", "not-a-number")
	t.Setenv("SESSION_SEARCH_WINDOW_SECONDS", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SessionGap != 900*time.Second {
		t.Errorf("invalid gap must fall back to the default, got %v", cfg.SessionGap)
	}
	if cfg.SearchWindow != time.Hour {
		t.Errorf("invalid window must fall back to the default, got %v", cfg.SearchWindow)
	}
}
