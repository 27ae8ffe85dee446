package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/angrytodo/internal/feedback"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	cfg := DefaultRuntimeConfig()
	if cfg.DatabasePath != filepath.Join("/tmp/xdg", "angrytodo", "angrytodo.db") {
		t.Fatalf("unexpected db path: %q", cfg.DatabasePath)
	}
	if cfg.LogFile != filepath.Join("/tmp/xdg", "angrytodo", "angrytodo.log") || cfg.LogLevel != "info" {
		t.Fatalf("unexpected log defaults: %+v", cfg)
	}
	if cfg.CompleteMode != CompleteToggle || cfg.CompleteDelta != 15 {
		t.Fatalf("unexpected completion defaults: %+v", cfg)
	}
	if cfg.SoundPools != feedback.PoolModePerKind || !cfg.SoundEnabled || cfg.SoundDir != "sounds" {
		t.Fatalf("unexpected sound defaults: %+v", cfg)
	}
	if cfg.MessageTTL != 3*time.Second {
		t.Fatalf("unexpected message ttl: %v", cfg.MessageTTL)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("ANGRYTODO_DB_PATH", "state/custom.db")
	t.Setenv("ANGRYTODO_LOG_FILE", "state/custom.log")
	t.Setenv("ANGRYTODO_LOG_LEVEL", "DEBUG")
	t.Setenv("ANGRYTODO_SOUND_ENABLED", "off")
	t.Setenv("ANGRYTODO_SOUND_DIR", "/opt/sounds")
	t.Setenv("ANGRYTODO_SOUND_COMMAND", "ffplay -nodisp -autoexit")
	t.Setenv("ANGRYTODO_SOUND_POOLS", "flat")
	t.Setenv("ANGRYTODO_COMPLETE_MODE", "remove")
	t.Setenv("ANGRYTODO_COMPLETE_DELTA", "5")
	t.Setenv("ANGRYTODO_MESSAGE_TTL_MS", "1500")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DatabasePath != "state/custom.db" || cfg.LogFile != "state/custom.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected path overrides: %+v", cfg)
	}
	if cfg.SoundEnabled || cfg.SoundDir != "/opt/sounds" || cfg.SoundCommand != "ffplay -nodisp -autoexit" {
		t.Fatalf("unexpected sound overrides: %+v", cfg)
	}
	if cfg.SoundPools != feedback.PoolModeFlat {
		t.Fatalf("expected flat pools, got %q", cfg.SoundPools)
	}
	if cfg.CompleteMode != CompleteRemove || cfg.CompleteDelta != 5 {
		t.Fatalf("unexpected completion overrides: %+v", cfg)
	}
	if cfg.MessageTTL != 1500*time.Millisecond {
		t.Fatalf("unexpected ttl: %v", cfg.MessageTTL)
	}
}

func TestRuntimeConfigFromEnvIgnoresBadValues(t *testing.T) {
	t.Setenv("ANGRYTODO_SOUND_ENABLED", "maybe")
	t.Setenv("ANGRYTODO_SOUND_POOLS", "shuffle")
	t.Setenv("ANGRYTODO_COMPLETE_MODE", "explode")
	t.Setenv("ANGRYTODO_COMPLETE_DELTA", "lots")
	t.Setenv("ANGRYTODO_MESSAGE_TTL_MS", "-4")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg != base {
		t.Fatalf("expected base config unchanged:\n got %+v\nwant %+v", cfg, base)
	}
}

func TestCompleteDeltaIsClamped(t *testing.T) {
	t.Setenv("ANGRYTODO_COMPLETE_DELTA", "99")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.CompleteDelta != 15 {
		t.Fatalf("expected clamp to 15, got %d", cfg.CompleteDelta)
	}
}

func TestDefaultDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/tester")
	if got := DefaultDataDir(); got != filepath.Join("/home/tester", ".local", "share", "angrytodo") {
		t.Fatalf("unexpected data dir: %q", got)
	}
}
