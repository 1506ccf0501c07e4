package logger

import (
	"io"
	"os"
	"time"

	"career-advisor/internal/config"

	"github.com/rs/zerolog"
)

func New(cfg config.AppConfig) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Environment == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(cfg, w)
}

func NewWithWriter(cfg config.AppConfig, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Str("app", cfg.AppName).
		Str("env", cfg.Environment).
		Logger()
}

func Startup(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("stage", "startup").Logger()
}

func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
