// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger
//              can decide how loudly a failure should be reported.
// Author: idmagic
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates caller error such as invalid input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with an obvious workaround
	SeverityMedium

	// SeverityHigh indicates an operation that cannot produce a result at all
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced prominently
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeDivisionByZero:
		return SeverityHigh

	case CodeDomainError, CodeInvalidOperation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
