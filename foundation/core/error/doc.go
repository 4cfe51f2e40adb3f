// Package error provides structured error handling for the comnum foundation.
//
// Package: error
// Title: comnum Error Handling Framework
// Description: This package implements a structured error type carrying a code,
//              a severity level, free-form details, the failing operation and an
//              optional cause. Errors compare by code through errors.Is so that
//              package sentinels such as mathx.ErrDivisionByZero match any error
//              raised with the same code, however deeply it is wrapped.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Code-based Is matching, exit codes per category
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes with categories and CLI exit codes
// - Root cause lookup through wrapped errors
// - Severity levels derived from codes unless set explicitly
// - JSON marshalling for structured logging
//
// Usage:
//   import mdwerror "github.com/idmagic/comnum/foundation/core/error"
//
//   err := mdwerror.New("divisor is zero").
//     WithCode(mdwerror.CodeDivisionByZero).
//     WithDetail("divisor", "0").
//     WithOperation("divide")
//
//   wrapped := mdwerror.Wrap(err, "evaluating calc operation")
//
//   if mdwerror.HasCode(wrapped, mdwerror.CodeDivisionByZero) {
//     // report the arithmetic failure
//   }
package error
