// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the fluent error builder, standard constructors and
//              extractors used across the comnum foundation and CLI so every
//              failure carries a module, an operation and a code.
// Author: idmagic
// Version: v0.1.2
// Created: 2026-10-06
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-12 v0.1.1: Mathx exponent and domain constructors, config helpers
// - 2026-10-15 v0.1.2: Mathx overflow constructor, unused constructors removed

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/idmagic/comnum/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(mdwerror.Code(eb.code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(getOperationErrorCode(module)).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if operation, ok := details["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// MathxDivisionByZero reports a zero divisor in a complex operation
func MathxDivisionByZero(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("division by zero").
		Code(CodeMathxDivisionByZero).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// MathxDomainError reports an argument outside the domain of a function
func MathxDomainError(operation string, input interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message(reason).
		Code(CodeMathxDomainError).
		Detail("input", input).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// MathxInvalidExponent reports an exponent that is not an integer
func MathxInvalidExponent(operation string, exponent interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("the power n must be an integer").
		Code(CodeMathxInvalidExponent).
		Detail("exponent", exponent).
		Detail("exponent_type", fmt.Sprintf("%T", exponent)).
		Severity(mdwerror.SeverityLow).
		Build()
}

// MathxOverflow reports a power whose magnitude does not fit in a float64
func MathxOverflow(operation string, exponent interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("numerical result out of range").
		Code(CodeMathxOverflow).
		Detail("exponent", exponent).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// ConfigLoadFailed reports a configuration file that could not be read or decoded
func ConfigLoadFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("failed to load configuration from %s", path).
		Cause(cause).
		Code(CodeConfigError).
		Detail("path", path).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// ConfigInvalid reports a configuration value rejected by validation
func ConfigInvalid(field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration %s: %s", field, reason).
		Code(CodeInvalidConfig).
		Detail("field", field).
		Detail("value", value).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// CalcUnknownOperation reports an operation name the calculator does not know
func CalcUnknownOperation(name string, known []string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCalc).
		Operation("lookup").
		Messagef("unknown operation %q", name).
		Code(CodeInvalidInput).
		Detail("input", name).
		Detail("expected", strings.Join(known, ", ")).
		Severity(mdwerror.SeverityLow).
		Build()
}
