// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     calc
// Description: Built-in operations and exponent parsing
// Author:      idmagic
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package calc

import (
	"strconv"
	"strings"

	"github.com/idmagic/comnum/foundation/core/errors"
	"github.com/idmagic/comnum/foundation/utils/mathx"
)

func builtinOperations() []*Operation {
	return []*Operation{
		{
			Name: "add", Aliases: []string{"plus"}, Summary: "a + b", Binary: true,
			Eval: func(in Input) (Result, error) { return ComplexResult(in.A.Add(in.B)), nil },
		},
		{
			Name: "sub", Aliases: []string{"subtract", "minus"}, Summary: "a - b", Binary: true,
			Eval: func(in Input) (Result, error) { return ComplexResult(in.A.Subtract(in.B)), nil },
		},
		{
			Name: "mul", Aliases: []string{"multiply", "times"}, Summary: "a * b", Binary: true,
			Eval: func(in Input) (Result, error) { return ComplexResult(in.A.Multiply(in.B)), nil },
		},
		{
			Name: "div", Aliases: []string{"divide"}, Summary: "a / b", Binary: true,
			Eval: func(in Input) (Result, error) {
				q, err := in.A.Divide(in.B)
				if err != nil {
					return Result{}, err
				}
				return ComplexResult(q), nil
			},
		},
		{
			Name: "eq", Aliases: []string{"equal"}, Summary: "a == b (exact)", Binary: true,
			Eval: func(in Input) (Result, error) { return BoolResult(in.A.Equal(in.B)), nil },
		},
		{
			Name: "round", Summary: "a rounded to the given digits", NeedsDigits: true,
			Eval: func(in Input) (Result, error) { return ComplexResult(in.A.Round(in.Digits)), nil },
		},
		{
			Name: "mod", Aliases: []string{"modulus", "abs"}, Summary: "|a|",
			Eval: func(in Input) (Result, error) { return ScalarResult(in.A.Modulus()), nil },
		},
		{
			Name: "arg", Aliases: []string{"argument", "phase"}, Summary: "argument of a in (-pi, pi]",
			Eval: func(in Input) (Result, error) { return ScalarResult(in.A.Argument()), nil },
		},
		{
			Name: "conj", Aliases: []string{"conjugate"}, Summary: "complex conjugate of a",
			Eval: func(in Input) (Result, error) { return ComplexResult(in.A.Conjugate()), nil },
		},
		{
			Name: "recip", Aliases: []string{"reciprocal", "inv"}, Summary: "1 / a",
			Eval: func(in Input) (Result, error) {
				inv, err := in.A.Reciprocal()
				if err != nil {
					return Result{}, err
				}
				return ComplexResult(inv), nil
			},
		},
		{
			Name: "sqrt", Summary: "principal square root of a",
			Eval: func(in Input) (Result, error) { return ComplexResult(in.A.Sqrt()), nil },
		},
		{
			Name: "log", Aliases: []string{"ln"}, Summary: "principal natural logarithm of a",
			Eval: func(in Input) (Result, error) {
				l, err := in.A.Log()
				if err != nil {
					return Result{}, err
				}
				return ComplexResult(l), nil
			},
		},
		{
			Name: "neg", Aliases: []string{"negate"}, Summary: "-a",
			Eval: func(in Input) (Result, error) { return ComplexResult(in.A.Neg()), nil },
		},
		{
			Name: "pow", Summary: "a^n in polar form", NeedsExponent: true,
			Eval: exponentEval(mathx.Pow[int64], mathx.Pow[float64]),
		},
		{
			Name: "powmul", Aliases: []string{"pow_mul"}, Summary: "a^n by repeated multiplication", NeedsExponent: true,
			Eval: exponentEval(mathx.PowMul[int64], mathx.PowMul[float64]),
		},
	}
}

// Exponent is a parsed exponent. Exactly one of Int and Float is meaningful.
type Exponent struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// ParseExponent reads an exponent typed by the user. Integer text becomes an
// integer exponent; any other text that reads as a number, "4.0" included,
// becomes a float exponent so the library can reject it.
func ParseExponent(text string) (Exponent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Exponent{}, errors.InvalidInput(errors.ModuleCalc, "exponent", text, "an integer exponent")
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Exponent{Int: n}, nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return Exponent{Float: f, IsFloat: true}, nil
	}
	return Exponent{}, errors.InvalidInput(errors.ModuleCalc, "exponent", text, "an integer exponent")
}

func exponentEval(
	powInt func(mathx.Complex, int64) (mathx.Complex, error),
	powFloat func(mathx.Complex, float64) (mathx.Complex, error),
) EvalFunc {
	return func(in Input) (Result, error) {
		n, err := ParseExponent(in.N)
		if err != nil {
			return Result{}, err
		}

		var c mathx.Complex
		if n.IsFloat {
			c, err = powFloat(in.A, n.Float)
		} else {
			c, err = powInt(in.A, n.Int)
		}
		if err != nil {
			return Result{}, err
		}
		return ComplexResult(c), nil
	}
}
