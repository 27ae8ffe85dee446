package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/angrytodo/internal/config"
	"github.com/sandeepkv93/angrytodo/internal/engine"
	"github.com/sandeepkv93/angrytodo/internal/feedback"
	"github.com/sandeepkv93/angrytodo/internal/log"
	"github.com/sandeepkv93/angrytodo/internal/storage"
	"github.com/sandeepkv93/angrytodo/internal/update"
)

func main() {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())

	logOut, closeLog := openLogFile(cfg.LogFile)
	defer closeLog()
	log.Init(logOut, cfg.LogLevel)

	var kv storage.KeyValueStore
	store, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DatabasePath).Msg("saved lists unavailable, using memory store")
		kv = storage.NewMemoryStore()
	} else {
		defer store.Close()
		kv = store
	}

	var player feedback.Player = feedback.NoopPlayer{}
	if cfg.SoundEnabled && cfg.SoundCommand != "" {
		player = feedback.NewExecPlayer(cfg.SoundDir, cfg.SoundCommand)
	}

	ctx := context.Background()
	eng := engine.New(ctx, kv, engine.WithConfig(cfg), engine.WithPlayer(player))
	log.Info().
		Str("db", cfg.DatabasePath).
		Str("complete_mode", string(cfg.CompleteMode)).
		Str("sound_pools", string(cfg.SoundPools)).
		Bool("sound", cfg.SoundEnabled).
		Msg("angrytodo started")

	program := tea.NewProgram(update.NewModel(ctx, eng), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("angrytodo exited with error")
		fmt.Fprintf(os.Stderr, "angrytodo failed: %v\n", err)
		os.Exit(1)
	}
}

// openLogFile keeps log output off the terminal the TUI draws on.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}
