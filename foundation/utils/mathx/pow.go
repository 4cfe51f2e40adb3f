// File: pow.go
// Title: Integer Exponentiation
// Description: Two algorithms raising a complex number to an integer power:
//              a closed form through polar coordinates and repeated
//              multiplication. Both round their result to PowDigits decimals
//              and agree after rounding.
// Author: idmagic
// Version: v0.1.1
// Created: 2026-10-08
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Overflow reported as ErrOverflow

package mathx

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/idmagic/comnum/foundation/core/errors"
)

// PowDigits is the number of decimals Pow and PowMul round their result to
const PowDigits = 10

// Exponent is the set of types Pow and PowMul accept. Floating-point types
// are part of the set so that they can be rejected with ErrInvalidExponent.
type Exponent interface {
	constraints.Integer | constraints.Float
}

// Pow returns x^n computed in polar form as |x|^n·(cos nθ + sin nθ·i),
// each part rounded to PowDigits decimals. x^0 is 1 for every x. A result
// outside the float64 range fails with ErrOverflow.
func Pow[N Exponent](x Complex, n N) (Complex, error) {
	k, err := integerExponent("pow", n)
	if err != nil {
		return Complex{}, err
	}
	if k == 0 {
		return Complex{Real: 1}, nil
	}
	if k < 0 && x.IsZero() {
		return Complex{}, errors.MathxDivisionByZero("pow")
	}

	m, theta := x.Polar()
	fact := math.Pow(m, float64(k))
	angle := float64(k) * theta
	z := Complex{Real: fact * math.Cos(angle), Imag: fact * math.Sin(angle)}
	if !finite(z) {
		return Complex{}, errors.MathxOverflow("pow", k)
	}
	return z.Round(PowDigits), nil
}

// PowMul returns x^n by multiplying |n| copies of x, taking the reciprocal
// when n is negative, and rounding to PowDigits decimals. Like Pow it fails
// with ErrOverflow when the result does not fit in a float64 and returns
// zero when only its reciprocal overflows.
func PowMul[N Exponent](x Complex, n N) (Complex, error) {
	k, err := integerExponent("pow_mul", n)
	if err != nil {
		return Complex{}, err
	}
	if k == 0 {
		return Complex{Real: 1}, nil
	}
	if k < 0 && x.IsZero() {
		return Complex{}, errors.MathxDivisionByZero("pow_mul")
	}

	count := uint64(k)
	if k < 0 {
		count = uint64(-(k + 1)) + 1
	}

	acc := x
	for i := uint64(1); i < count && finite(acc) && !acc.IsZero(); i++ {
		acc = acc.Multiply(x)
	}

	if k > 0 {
		if !finite(acc) {
			return Complex{}, errors.MathxOverflow("pow_mul", k)
		}
		return acc.Round(PowDigits), nil
	}

	if !finite(acc) {
		// |x^-k| left the float64 range, so x^k rounds to zero
		return Complex{}, nil
	}
	if acc.IsZero() {
		// the product underflowed, so x^k is too large to represent
		return Complex{}, errors.MathxOverflow("pow_mul", k)
	}
	inv, err := acc.Reciprocal()
	if err != nil {
		return Complex{}, errors.MathxDivisionByZero("pow_mul")
	}
	return inv.Round(PowDigits), nil
}

func finite(c Complex) bool {
	return !math.IsInf(c.Real, 0) && !math.IsNaN(c.Real) &&
		!math.IsInf(c.Imag, 0) && !math.IsNaN(c.Imag)
}

// integerExponent converts n to int64, rejecting floating-point types and
// unsigned values that do not fit
func integerExponent[N Exponent](operation string, n N) (int64, error) {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return 0, errors.MathxInvalidExponent(operation, n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, errors.MathxInvalidExponent(operation, n)
		}
		return int64(u), nil
	default:
		return v.Int(), nil
	}
}
