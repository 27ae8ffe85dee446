// Package config resolves runtime settings from defaults and ANGRYTODO_*
// environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/angrytodo/internal/feedback"
	"github.com/sandeepkv93/angrytodo/internal/mood"
)

const AppName = "angrytodo"

type CompleteMode string

const (
	// CompleteToggle flips the task's done flag in place.
	CompleteToggle CompleteMode = "toggle"
	// CompleteRemove drops the task from the list once completed.
	CompleteRemove CompleteMode = "remove"
)

func (m CompleteMode) IsValid() bool {
	switch m {
	case CompleteToggle, CompleteRemove:
		return true
	default:
		return false
	}
}

type RuntimeConfig struct {
	DatabasePath  string
	LogFile       string
	LogLevel      string
	SoundEnabled  bool
	SoundDir      string
	SoundCommand  string
	SoundPools    feedback.PoolMode
	CompleteMode  CompleteMode
	CompleteDelta int
	MessageTTL    time.Duration
}

func DefaultRuntimeConfig() RuntimeConfig {
	dir := DefaultDataDir()
	return RuntimeConfig{
		DatabasePath:  filepath.Join(dir, AppName+".db"),
		LogFile:       filepath.Join(dir, AppName+".log"),
		LogLevel:      "info",
		SoundEnabled:  true,
		SoundDir:      "sounds",
		SoundCommand:  feedback.DefaultPlayerCommand(),
		SoundPools:    feedback.PoolModePerKind,
		CompleteMode:  CompleteToggle,
		CompleteDelta: mood.DefaultDeltas().Complete,
		MessageTTL:    feedback.DefaultMessageTTL,
	}
}

// RuntimeConfigFromEnv overlays environment overrides onto base. Unparseable
// or out-of-domain values are ignored and the base value kept.
func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("ANGRYTODO_DB_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvString("ANGRYTODO_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("ANGRYTODO_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvBool("ANGRYTODO_SOUND_ENABLED"); ok {
		cfg.SoundEnabled = v
	}
	if v, ok := getEnvString("ANGRYTODO_SOUND_DIR"); ok {
		cfg.SoundDir = v
	}
	if v, ok := getEnvString("ANGRYTODO_SOUND_COMMAND"); ok {
		cfg.SoundCommand = v
	}
	if v, ok := getEnvString("ANGRYTODO_SOUND_POOLS"); ok {
		if mode, err := feedback.ParsePoolMode(v); err == nil {
			cfg.SoundPools = mode
		}
	}
	if v, ok := getEnvString("ANGRYTODO_COMPLETE_MODE"); ok {
		if mode := CompleteMode(strings.ToLower(v)); mode.IsValid() {
			cfg.CompleteMode = mode
		}
	}
	if v, ok := getEnvInt("ANGRYTODO_COMPLETE_DELTA"); ok {
		cfg.CompleteDelta = mood.DefaultDeltas().WithCompleteDelta(v).Complete
	}
	if v, ok := getEnvInt("ANGRYTODO_MESSAGE_TTL_MS"); ok && v > 0 {
		cfg.MessageTTL = time.Duration(v) * time.Millisecond
	}
	return cfg
}

// DefaultDataDir uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
