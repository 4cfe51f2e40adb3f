// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the complex number value type used by
//              comnum together with its arithmetic, polar-form queries and
//              integer exponentiation.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-07
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation with arithmetic and polar queries
// - 2026-10-12 v0.2.0: Generic exponentiation, errors for zero divisors and ln 0

// Package mathx provides a small complex number type built on float64.
//
// Package: mathx
// Title: Complex Number Arithmetic
// Description: Complex is a plain value holding a real and an imaginary part.
//              Every operation has a value receiver and returns a new value,
//              so a Complex can be shared freely between goroutines.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-07
// Modified: 2026-10-12
//
// Overview
//
// The operation set covers:
//   - Construction and rendering: New, FromPolar, FromComplex128, String
//   - Equality: Equal (exact) and ApproxEqual (component tolerance)
//   - Rounding: Round, RoundFloat (round half to even on the binary value)
//   - Arithmetic: Add, Subtract, Multiply, Divide, Neg
//   - Polar form: Modulus, Argument, Polar
//   - Conjugate, Reciprocal, Sqrt (principal root), Log (principal branch)
//   - Exponentiation by an integer: Pow (polar closed form) and PowMul
//     (repeated multiplication), both rounded to PowDigits decimals
//
// Error Handling
//
// Operations that cannot produce a finite result return an error instead of
// NaN or infinity:
//
//   - Divide and Reciprocal by zero: ErrDivisionByZero
//   - Log of zero: ErrDomain
//   - Pow and PowMul with a floating-point exponent: ErrInvalidExponent
//   - Pow and PowMul results outside the float64 range: ErrOverflow
//   - Pow and PowMul of zero with a negative exponent: ErrDivisionByZero
//
// The sentinels match through errors.Is by error code:
//
//	q, err := a.Divide(b)
//	if errors.Is(err, mathx.ErrDivisionByZero) {
//		// b was 0
//	}
//
// Exponents
//
// Pow and PowMul accept any integer or floating-point type so that callers
// holding a float get a descriptive error rather than a silent truncation.
// The check is on the type, not the value: Pow(a, 4.0) fails.
//
//	p, _ := mathx.Pow(mathx.New(1, 2), 4)    // -7 - 24*i
//	_, err := mathx.Pow(mathx.New(1, 2), 1.5) // ErrInvalidExponent
//
// Rendering
//
// String prints "0", "<imag>*i", "<real>" or "<real> ± <|imag|>*i" depending on
// which parts are zero. Parts are printed in their shortest round-trip form,
// integral values without a fractional part.
package mathx
