// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              comnum foundation and CLI. Module-specific codes (for example
//              the mathx codes) are built from these by the errors package.
// Author: idmagic
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Arithmetic
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeDivisionByZero   Code = "DIVISION_BY_ZERO"
	CodeDomainError      Code = "DOMAIN_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is one of the core codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeInvalidOperation, CodeDivisionByZero, CodeDomainError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidOperation, CodeDivisionByZero, CodeDomainError:
		return "arithmetic"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a CLI should use for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "arithmetic":
		return 3
	case "configuration":
		return 4
	default:
		return 1
	}
}
