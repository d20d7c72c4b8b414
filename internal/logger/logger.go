package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
)

type Logger = *slog.Logger

// New creates the application logger writing tinted output to stderr.
func New(level string) Logger {
	return slog.New(newTintHandler(level))
}

// NewWithSentry initializes Sentry with the given DSN and returns a logger
// whose error-level records are reported to it.
func NewWithSentry(level, dsn string) (Logger, error) {
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		return nil, err
	}
	return slog.New(NewSentryHandler(newTintHandler(level))), nil
}

func newTintHandler(level string) slog.Handler {
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.TimeOnly,
	})
}

// ParseLevel maps a config level string to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
