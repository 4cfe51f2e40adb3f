// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     demo
// Description: Demonstration scenario exercising every complex operation
// Author:      idmagic
// Created:     2026-10-13
// License:     MIT
// ============================================================================

// Package demo runs a fixed sequence of complex-number operations and renders
// each result on its own line, either plain or styled with lipgloss.
package demo

import (
	"fmt"
	"math"

	"github.com/idmagic/comnum/foundation/utils/mathx"
	"github.com/idmagic/comnum/internal/calc"
	"github.com/idmagic/comnum/pkg/core/config"
)

// Line is one step of the scenario. Err is set instead of Result when the
// operation failed.
type Line struct {
	Label  string
	Result calc.Result
	Note   string
	Err    error
}

// Failed reports whether the step produced an error
func (l Line) Failed() bool {
	return l.Err != nil
}

// Scenario holds the operands the demonstration runs on
type Scenario struct {
	A mathx.Complex
	B mathx.Complex

	// Exponents are passed to both power algorithms
	Exponents []int

	// InvalidExponent is passed as a float to show that it is rejected
	InvalidExponent float64

	// RoundDigits is used to round f
	RoundDigits int
}

// FromConfig builds the scenario from the demo configuration
func FromConfig(cfg config.DemoConfig) Scenario {
	exponents := make([]int, len(cfg.Exponents))
	copy(exponents, cfg.Exponents)

	return Scenario{
		A:               mathx.New(cfg.A.Real, cfg.A.Imag),
		B:               mathx.New(cfg.B.Real, cfg.B.Imag),
		Exponents:       exponents,
		InvalidExponent: cfg.InvalidExponent,
		RoundDigits:     cfg.RoundDigits,
	}
}

// Default returns the scenario of the default configuration
func Default() Scenario {
	return FromConfig(config.Default().Demo)
}

// Run evaluates every step. A failing step is recorded in its line and the
// remaining steps still run.
func (s Scenario) Run() []Line {
	a, b := s.A, s.B
	c := mathx.New(0, 5)
	d := mathx.New(7, 0)
	f := mathx.New(math.Sqrt2, math.Pi)

	lines := []Line{
		value("a", a),
		value("b", b),
		{Label: "(a == b)", Result: calc.BoolResult(a.Equal(b))},
		value("c", c),
		value("d", d),
		value("f", f),
		value(fmt.Sprintf("round(f, %d)", s.RoundDigits), f.Round(s.RoundDigits)),
		value("a + b", a.Add(b)),
		value("b - a", b.Subtract(a)),
		value("a*b", a.Multiply(b)),
		result(a.Divide(b)).as("a/b", ""),
		{Label: "|a|", Result: calc.ScalarResult(a.Modulus())},
		{Label: "arg(a)", Result: calc.ScalarResult(a.Argument())},
		value("Conjugate of a", a.Conjugate()),
		result(a.Reciprocal()).as("1/a", ""),
		value("Principal value of sqrt(a)", a.Sqrt()),
		result(a.Log()).as("Principal value of ln(a)", ""),
	}

	for _, n := range s.Exponents {
		label := exponentLabel(n)
		lines = append(lines,
			result(mathx.Pow(a, n)).as(label, "pow"),
			result(mathx.PowMul(a, n)).as(label, "pow_mul"),
		)
	}

	invalid := "a^" + mathx.FormatFloat(s.InvalidExponent)
	lines = append(lines, result(mathx.Pow(a, s.InvalidExponent)).as(invalid, "pow"))

	return lines
}

func value(label string, c mathx.Complex) Line {
	return Line{Label: label, Result: calc.ComplexResult(c)}
}

func result(c mathx.Complex, err error) Line {
	if err != nil {
		return Line{Err: err}
	}
	return Line{Result: calc.ComplexResult(c)}
}

func (l Line) as(label, note string) Line {
	l.Label = label
	l.Note = note
	return l
}

func exponentLabel(n int) string {
	if n < 0 {
		return fmt.Sprintf("a^(%d)", n)
	}
	return fmt.Sprintf("a^%d", n)
}
