// File: complex.go
// Title: Complex Number Implementation
// Description: Implements the Complex value type: construction, rendering,
//              equality, rounding and arithmetic. Division and reciprocal
//              by zero return errors.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-07
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation with core complex operations
// - 2026-10-12 v0.2.0: Errors for zero divisors, Must* variants, Neg

package mathx

import (
	"math"

	"github.com/idmagic/comnum/foundation/core/errors"
)

// Complex is a complex number Real + Imag·i. The zero value is 0.
type Complex struct {
	Real float64
	Imag float64
}

// New creates a complex number from its real and imaginary parts
func New(real, imag float64) Complex {
	return Complex{Real: real, Imag: imag}
}

// FromComplex128 converts a builtin complex128
func FromComplex128(c complex128) Complex {
	return Complex{Real: real(c), Imag: imag(c)}
}

// Complex128 converts to the builtin complex128
func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imag)
}

// IsZero reports whether both parts are zero
func (c Complex) IsZero() bool {
	return c.Real == 0 && c.Imag == 0
}

// String renders the number as "a + b*i", omitting zero parts
func (c Complex) String() string {
	switch {
	case c.IsZero():
		return "0"
	case c.Real == 0:
		return FormatFloat(c.Imag) + "*i"
	case c.Imag == 0:
		return FormatFloat(c.Real)
	case c.Imag < 0:
		return FormatFloat(c.Real) + " - " + FormatFloat(-c.Imag) + "*i"
	default:
		return FormatFloat(c.Real) + " + " + FormatFloat(c.Imag) + "*i"
	}
}

// Equal reports whether both parts are exactly equal
func (c Complex) Equal(other Complex) bool {
	return c.Real == other.Real && c.Imag == other.Imag
}

// ApproxEqual reports whether both parts differ by at most tol
func (c Complex) ApproxEqual(other Complex, tol float64) bool {
	return math.Abs(c.Real-other.Real) <= tol && math.Abs(c.Imag-other.Imag) <= tol
}

// Round rounds both parts to places decimal digits (see RoundFloat)
func (c Complex) Round(places int) Complex {
	return Complex{
		Real: RoundFloat(c.Real, places),
		Imag: RoundFloat(c.Imag, places),
	}
}

// Add returns c + other
func (c Complex) Add(other Complex) Complex {
	return Complex{Real: c.Real + other.Real, Imag: c.Imag + other.Imag}
}

// Subtract returns c - other
func (c Complex) Subtract(other Complex) Complex {
	return Complex{Real: c.Real - other.Real, Imag: c.Imag - other.Imag}
}

// Multiply returns c · other
func (c Complex) Multiply(other Complex) Complex {
	return Complex{
		Real: c.Real*other.Real - c.Imag*other.Imag,
		Imag: c.Real*other.Imag + c.Imag*other.Real,
	}
}

// Divide returns c / other, or ErrDivisionByZero when other is zero
func (c Complex) Divide(other Complex) (Complex, error) {
	d := other.Real*other.Real + other.Imag*other.Imag
	if d == 0 {
		return Complex{}, errors.MathxDivisionByZero("divide")
	}
	return Complex{
		Real: (c.Real*other.Real + c.Imag*other.Imag) / d,
		Imag: (c.Imag*other.Real - c.Real*other.Imag) / d,
	}, nil
}

// MustDivide returns c / other, panicking on a zero divisor
func (c Complex) MustDivide(other Complex) Complex {
	result, err := c.Divide(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Neg returns -c
func (c Complex) Neg() Complex {
	return Complex{Real: -c.Real, Imag: -c.Imag}
}

// Conjugate returns Real - Imag·i
func (c Complex) Conjugate() Complex {
	return Complex{Real: c.Real, Imag: -c.Imag}
}

// Reciprocal returns 1 / c, or ErrDivisionByZero when c is zero
func (c Complex) Reciprocal() (Complex, error) {
	d := c.Real*c.Real + c.Imag*c.Imag
	if d == 0 {
		return Complex{}, errors.MathxDivisionByZero("reciprocal")
	}
	return Complex{Real: c.Real / d, Imag: -c.Imag / d}, nil
}

// MustReciprocal returns 1 / c, panicking when c is zero
func (c Complex) MustReciprocal() Complex {
	result, err := c.Reciprocal()
	if err != nil {
		panic(err)
	}
	return result
}

// Sqrt returns the principal square root. The real part is never negative
// and the imaginary part takes the sign of c.Imag (positive for +0).
func (c Complex) Sqrt() Complex {
	m := c.Modulus()
	sign := 1.0
	if c.Imag < 0 {
		sign = -1
	}
	return Complex{
		Real: math.Sqrt((m + c.Real) / 2),
		Imag: sign * math.Sqrt((m-c.Real)/2),
	}
}

// Log returns the principal natural logarithm ln|c| + arg(c)·i.
// The logarithm of zero is undefined and yields ErrDomain.
func (c Complex) Log() (Complex, error) {
	m := c.Modulus()
	if m == 0 {
		return Complex{}, errors.MathxDomainError("log", c.String(), "logarithm of zero is undefined")
	}
	return Complex{Real: math.Log(m), Imag: c.Argument()}, nil
}
