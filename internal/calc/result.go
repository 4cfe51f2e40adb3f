// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     calc
// Description: Operation results and their rendering
// Author:      idmagic
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package calc

import (
	"strconv"

	"github.com/idmagic/comnum/foundation/utils/mathx"
)

// Kind tells which field of a Result is set
type Kind int

const (
	KindComplex Kind = iota
	KindScalar
	KindBool
)

// Result is the value produced by an operation
type Result struct {
	Kind    Kind
	Complex mathx.Complex
	Scalar  float64
	Bool    bool
}

// ComplexResult wraps a complex value
func ComplexResult(c mathx.Complex) Result {
	return Result{Kind: KindComplex, Complex: c}
}

// ScalarResult wraps a real value
func ScalarResult(f float64) Result {
	return Result{Kind: KindScalar, Scalar: f}
}

// BoolResult wraps a truth value
func BoolResult(b bool) Result {
	return Result{Kind: KindBool, Bool: b}
}

// String renders the result in its shortest form
func (r Result) String() string {
	return r.Format(-1)
}

// Format renders the result. A precision of 0 or more rounds numeric values
// to that many decimals first; -1 prints them unrounded.
func (r Result) Format(precision int) string {
	switch r.Kind {
	case KindBool:
		return strconv.FormatBool(r.Bool)
	case KindScalar:
		f := r.Scalar
		if precision >= 0 {
			f = mathx.RoundFloat(f, precision)
		}
		if f == 0 {
			f = 0 // drop the sign of negative zero
		}
		return mathx.FormatFloat(f)
	default:
		c := r.Complex
		if precision >= 0 {
			c = c.Round(precision)
		}
		return c.String()
	}
}
