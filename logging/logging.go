// Package logging provides configurable zap logger creation for contour
// commands and batch runs.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Style selects the log output format.
type Style string

const (
	// StyleTerminal is human-readable development output, the default.
	StyleTerminal Style = "terminal"
	// StyleJSON is structured production output.
	StyleJSON Style = "json"
	// StyleNoop discards everything; used by library consumers and tests.
	StyleNoop Style = "noop"
)

// Config holds logger settings. The zero value yields a terminal logger
// at info level.
type Config struct {
	// Style is one of terminal, json, or noop.
	Style Style
	// Level is a zap level name: debug, info, warn, error.
	Level string
}

// NewLogger creates a zap logger from the config. Nil config or empty
// fields fall back to terminal style at info level. An unknown style or
// level is an error rather than a silent default so misconfiguration
// surfaces at startup.
func NewLogger(c *Config) (*zap.Logger, error) {
	style := StyleTerminal
	level := zapcore.InfoLevel

	if c != nil {
		if c.Style != "" {
			style = c.Style
		}
		if c.Level != "" {
			lvl, err := zapcore.ParseLevel(c.Level)
			if err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
			}
			level = lvl
		}
	}

	switch style {
	case StyleNoop:
		return zap.NewNop(), nil
	case StyleJSON:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		return cfg.Build(
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		)
	case StyleTerminal:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		return cfg.Build(
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		)
	default:
		return nil, fmt.Errorf("invalid logging style %q: must be one of: terminal, json, noop", style)
	}
}
