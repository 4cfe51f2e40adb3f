// Package log provides structured logging for the comnum command-line tools.
//
// Package: log
// Title: comnum Structured Logging
// Description: This package implements a small structured logger with levels,
//              persistent context fields, several output formats and timers.
//              It understands the structured error type of the error package
//              and maps error severity to log level.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Deterministic field order, command context, stderr default
//
// Usage:
//   import mdwlog "github.com/idmagic/comnum/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatLogfmt).
//     WithCorrelationID(id).
//     WithCommand("calc")
//
//   logger.Debug("evaluating", mdwlog.String("op", "div"))
//   logger.LogError(err)
//
//   timer := logger.StartTimer("demo")
//   // ... run the scenario
//   timer.Stop()
package log
