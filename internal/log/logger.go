// SPDX-License-Identifier: MIT

// Package log wraps zerolog with a process-wide logger for lvmatrix tools.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultService is attached to every entry when Config.Service is empty.
const DefaultService = "lvmatrix"

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global zerolog logger exactly once.
// Later calls are ignored.
func Configure(cfg Config) {
	once.Do(func() {
		base = New(cfg)
	})
}

// New builds a standalone logger from cfg without touching the global one.
// The level comes from cfg.Level, then LOG_LEVEL, then defaults to info.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	service := cfg.Service
	if service == "" {
		service = DefaultService
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", service).
		Logger()
}

func logger() zerolog.Logger {
	Configure(Config{})
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}
