// Package log wraps a process-wide zerolog logger.
package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.New(os.Stderr).With().Timestamp().Logger()
	loggerLock sync.RWMutex
)

// Init redirects output and sets the level. The terminal UI owns stdout, so
// the binary points this at a file.
func Init(w io.Writer, level string) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a string log level to zerolog.Level
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	l := logger
	return &l
}

func Debug() *zerolog.Event {
	return current().Debug()
}

func Info() *zerolog.Event {
	return current().Info()
}

func Warn() *zerolog.Event {
	return current().Warn()
}

func Error() *zerolog.Event {
	return current().Error()
}
