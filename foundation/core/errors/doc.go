// Package errors provides the standard error handling interface for the comnum
// foundation modules and the CLI built on top of them.
//
// Package: errors
// Title: Standard Error Handling API for comnum
// Description: This package provides common error patterns, standardized error
//              codes and a fluent builder on top of the core error package, so
//              every failure carries the module and operation that raised it.
// Author: idmagic
// Version: v0.1.1
// Created: 2026-10-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-12 v0.1.1: Mathx exponent/domain codes, config and calc helpers
//
// # Standardized Error Codes
//
//   - Common codes: INVALID_INPUT, INVALID_FORMAT, OUT_OF_RANGE, NOT_FOUND
//   - mathx codes: MATHX_DIVISION_BY_ZERO, MATHX_DOMAIN_ERROR, MATHX_INVALID_EXPONENT
//   - config codes: CONFIG_ERROR, INVALID_CONFIG
//
// # Error Creation
//
//	err := errors.NewErrorBuilder(errors.ModuleMathx).
//		Operation("divide").
//		Message("division by zero").
//		Code(errors.CodeMathxDivisionByZero).
//		Severity(mdwerror.SeverityHigh).
//		Build()
//
// The builder records module and operation as details; ExtractModule,
// ExtractOperation and Describe read them back for logging and CLI output.
package errors
