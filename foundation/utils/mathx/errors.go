// File: errors.go
// Title: mathx Error Sentinels
// Description: Sentinel errors for the failure modes of complex operations.
//              Errors returned by the package carry the same codes, so they
//              match these sentinels through errors.Is.
// Author: idmagic
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package mathx

import (
	mdwerror "github.com/idmagic/comnum/foundation/core/error"
	"github.com/idmagic/comnum/foundation/core/errors"
)

var (
	// ErrDivisionByZero matches errors from dividing by, or inverting, zero
	ErrDivisionByZero = sentinel(errors.CodeMathxDivisionByZero, "division by zero", mdwerror.SeverityHigh)

	// ErrDomain matches errors from functions evaluated outside their domain
	ErrDomain = sentinel(errors.CodeMathxDomainError, "argument outside function domain", mdwerror.SeverityMedium)

	// ErrInvalidExponent matches errors from non-integer exponents
	ErrInvalidExponent = sentinel(errors.CodeMathxInvalidExponent, "the power n must be an integer", mdwerror.SeverityLow)

	// ErrOverflow matches errors from powers too large to represent
	ErrOverflow = sentinel(errors.CodeMathxOverflow, "numerical result out of range", mdwerror.SeverityMedium)
)

func sentinel(code, message string, severity mdwerror.Severity) *mdwerror.Error {
	return errors.NewErrorBuilder(errors.ModuleMathx).
		Message(message).
		Code(code).
		Severity(severity).
		Build()
}
