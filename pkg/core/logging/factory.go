// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating CLI loggers
// Author:      idmagic
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/idmagic/comnum/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, used as the logger name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, logfmt, console); default text
	Format string

	// Output destination; default stderr so results on stdout stay clean
	Output io.Writer

	// CorrelationID tags every entry; a new uuid is generated when empty
	CorrelationID string

	// EnableCaller adds file:line to entries
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a foundation logger stamped with a correlation id.
// Unknown levels fall back to warn and unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	}).WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// NewCorrelationID returns a fresh random id for one CLI run
func NewCorrelationID() string {
	return uuid.NewString()
}
