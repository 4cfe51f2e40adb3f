// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering log output, their names,
//              short names and console colors.
// Author: idmagic
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with standard log levels

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates a failed operation the user can correct
	LevelWarn

	// LevelError represents errors that abort a command
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal

	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

var levelNames = [...]struct {
	long, short, color string
}{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
	LevelAudit: {"audit", "AUD", "\033[34m"},
}

const colorReset = "\033[0m"

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelAudit
}

// String returns the string representation of the log level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns a three-letter representation of the log level
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Color returns the ANSI color code for the log level
func (l Level) Color() string {
	if !l.valid() {
		return colorReset
	}
	return levelNames[l].color
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all available log levels
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelAudit}
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelWarn
}
