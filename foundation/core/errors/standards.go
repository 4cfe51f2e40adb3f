// File: standards.go
// Title: Error Standards for comnum Foundation
// Description: Provides module identifiers, standardized error codes and the
//              helpers that derive default codes for modules and operations.
// Author: idmagic
// Version: v0.1.2
// Created: 2026-10-06
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation for error standardization
// - 2026-10-12 v0.1.1: Added mathx exponent and domain codes, config codes
// - 2026-10-15 v0.1.2: Mathx overflow code, Message helper

package errors

import (
	"fmt"

	mdwerror "github.com/idmagic/comnum/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx  = "mathx"
	ModuleConfig = "config"
	ModuleCalc   = "calc"
	ModuleCLI    = "cli"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - mathx
	CodeMathxDivisionByZero  = "MATHX_DIVISION_BY_ZERO"
	CodeMathxDomainError     = "MATHX_DOMAIN_ERROR"
	CodeMathxInvalidExponent = "MATHX_INVALID_EXPONENT"
	CodeMathxOverflow        = "MATHX_OVERFLOW"
	CodeMathxOperationFailed = "MATHX_OPERATION_FAILED"

	// Module-specific error codes - config
	CodeConfigError   = "CONFIG_ERROR"
	CodeInvalidConfig = "INVALID_CONFIG"
)

// getModuleErrorCode derives a default code from the module and operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleMathx:
		return getMathxErrorCode(operation)
	case ModuleConfig:
		return CodeConfigError
	default:
		return CodeOperationFailed
	}
}

func getMathxErrorCode(operation string) string {
	switch operation {
	case "divide", "reciprocal":
		return CodeMathxDivisionByZero
	case "log":
		return CodeMathxDomainError
	case "pow", "pow_mul":
		return CodeMathxInvalidExponent
	default:
		return CodeMathxOperationFailed
	}
}

// getOperationErrorCode returns the generic failure code used by a module
func getOperationErrorCode(module string) string {
	switch module {
	case ModuleMathx:
		return CodeMathxOperationFailed
	case ModuleConfig:
		return CodeConfigError
	default:
		return CodeOperationFailed
	}
}

// Describe renders a one-line summary of a structured error for CLI output,
// for example "[MATHX_DIVISION_BY_ZERO] mathx.divide: division by zero".
func Describe(err error) string {
	if err == nil {
		return ""
	}
	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		return err.Error()
	}

	where := ExtractModule(err)
	if op := ExtractOperation(err); op != "" {
		where = fmt.Sprintf("%s.%s", where, op)
	}
	if where == "" {
		return fmt.Sprintf("[%s] %s", mdwErr.Code(), mdwErr.Error())
	}
	return fmt.Sprintf("[%s] %s: %s", mdwErr.Code(), where, mdwErr.Error())
}

// Message returns the message of a structured error without the messages of
// its causes, or err.Error() for any other error
func Message(err error) string {
	if err == nil {
		return ""
	}
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Message()
	}
	return err.Error()
}
