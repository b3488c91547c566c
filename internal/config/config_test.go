package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.Source != SourceStatic || cfg.Layout.ReferenceWidth != 800 || cfg.Terminal.FPS != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
quiz:
  source: csv
  id: capitals
  dir: ./data
  advance_delay: 750ms
terminal:
  fps: 30
redis:
  addr: localhost:6379
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.Source != SourceCSV || cfg.Quiz.ID != "capitals" || cfg.Quiz.Dir != "./data" {
		t.Fatalf("quiz section not applied: %+v", cfg.Quiz)
	}
	if got := Duration(cfg.Quiz.AdvanceDelay, time.Second); got != 750*time.Millisecond {
		t.Fatalf("expected 750ms, got %v", got)
	}
	if cfg.Terminal.FPS != 30 || cfg.Terminal.CellWidth != 10 {
		t.Fatalf("terminal section not merged over defaults: %+v", cfg.Terminal)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr not applied")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("quiz:\n  source: postgres\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected postgres source without url to be rejected")
	}
}

func TestValidateRejectsNonPositiveRedisTTL(t *testing.T) {
	for _, ttl := range []string{"0s", "-1m", "soon"} {
		cfg := Default()
		cfg.Redis.Addr = "localhost:6379"
		cfg.Redis.TTL = ttl
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected redis.ttl %q to be rejected", ttl)
		}
	}
	cfg := Default()
	cfg.Redis.TTL = "30s"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected positive ttl to pass: %v", err)
	}
}

func TestDurationFallback(t *testing.T) {
	if got := Duration("", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for empty, got %v", got)
	}
	if got := Duration("soon", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for invalid, got %v", got)
	}
}
