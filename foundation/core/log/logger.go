// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled structured logging with
//              persistent context, pluggable formatters and integration with
//              the structured error type.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with structured logging
// - 2026-10-12 v0.2.0: Dropped async buffering, added command context and Nop logger

package log

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/idmagic/comnum/foundation/core/error"
)

// Logger represents a structured logger with contextual information.
// All With* methods return a modified copy; the receiver is never changed.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	correlationID string
	command       string

	enableCaller     bool
	callerSkipFrames int

	mutex   sync.RWMutex
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a logger writing text at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatText,
		Output: os.Stderr,
	})
}

// NewNop creates a logger that discards everything
func NewNop() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:            config.Level,
		formatter:        GetFormatter(config.Format),
		output:           config.Output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
		writeMu:          &sync.Mutex{},
	}

	if logger.output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// with clones the logger under the read lock and applies fn to the copy
func (l *Logger) with(fn func(*Logger)) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		level:            l.level,
		formatter:        l.formatter,
		output:           l.output,
		name:             l.name,
		contextFields:    l.contextFields.Clone(),
		correlationID:    l.correlationID,
		command:          l.command,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
		writeMu:          l.writeMu,
	}
	if clone.contextFields == nil {
		clone.contextFields = make(Fields)
	}
	fn(clone)
	return clone
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.with(func(c *Logger) { c.level = level })
}

// WithFormat sets the log format
func (l *Logger) WithFormat(format Format) *Logger {
	return l.with(func(c *Logger) { c.formatter = GetFormatter(format) })
}

// WithFormatter sets a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	return l.with(func(c *Logger) { c.formatter = formatter })
}

// WithOutput sets the output destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.with(func(c *Logger) {
		c.output = output
		c.writeMu = &sync.Mutex{}
	})
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	return l.with(func(c *Logger) { c.name = name })
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.with(func(c *Logger) { c.contextFields[key] = value })
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.with(func(c *Logger) {
		for k, v := range fields {
			c.contextFields[k] = v
		}
	})
}

// WithCorrelationID tags every entry with the id of the current run
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.with(func(c *Logger) { c.correlationID = correlationID })
}

// WithCommand tags every entry with the CLI command being executed
func (l *Logger) WithCommand(command string) *Logger {
	return l.with(func(c *Logger) { c.command = command })
}

// WithCaller enables caller information in log entries
func (l *Logger) WithCaller(skip int) *Logger {
	return l.with(func(c *Logger) {
		c.enableCaller = true
		c.callerSkipFrames = skip
	})
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs an error with its code and details. Structured errors are
// logged at a level derived from their severity; other errors at LevelError.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.ErrorWithErr(err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}
	if root := mdwErr.RootCause(); root != err {
		fields["error_root_cause"] = root.Error()
	}

	l.log(LevelForSeverity(mdwErr.Severity()), mdwErr.Message(), err, fields)
}

// LevelForSeverity maps an error severity to the level it is logged at
func LevelForSeverity(severity mdwerror.Severity) Level {
	switch severity {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// StartTimer creates and starts a new timer for an operation
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel changes the log level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.logTimed(level, message, err, 0, fields...)
}

// logTimed builds, formats and writes one entry
func (l *Logger) logTimed(level Level, message string, err error, duration time.Duration, fields ...Fields) {
	l.mutex.RLock()

	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Command = l.command
	entry.Error = err
	entry.Duration = duration

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		if function, file, line, ok := l.getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}

	formatter := l.formatter
	output := l.output
	writeMu := l.writeMu
	l.mutex.RUnlock()

	formatted, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}

	writeMu.Lock()
	_, _ = output.Write(formatted)
	writeMu.Unlock()
}

// getCaller returns caller information
func (l *Logger) getCaller() (function, file string, line int, ok bool) {
	// getCaller, logTimed, log, public method, user code
	skip := 4 + l.callerSkipFrames

	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}

	return function, filepath.Base(file), line, true
}
