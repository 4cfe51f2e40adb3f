// File: complex_test.go
// Title: Complex Number Tests
// Description: Tests for construction, rendering, equality, rounding,
//              arithmetic, square root and logarithm.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-07
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-07 v0.1.0: Initial test implementation
// - 2026-10-12 v0.2.0: Zero-divisor errors, math/cmplx cross-checks

package mathx

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

// grid is a sample of non-zero operands used for cross-checks
var grid = []Complex{
	New(1, 2), New(3, -4), New(-1, 0), New(0, 1), New(0, -5),
	New(-2.5, 0.5), New(7, 0), New(math.Sqrt2, math.Pi), New(-3, -3), New(0.001, 1000),
}

func TestZeroValue(t *testing.T) {
	var c Complex
	if !c.Equal(New(0, 0)) || !c.IsZero() {
		t.Errorf("zero value = %v, want 0", c)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Complex
		want string
	}{
		{New(0, 0), "0"},
		{New(math.Copysign(0, -1), 0), "0"},
		{New(0, -3), "-3*i"},
		{New(0, 1), "1*i"},
		{New(5, 0), "5"},
		{New(7, 0), "7"},
		{New(1, 2), "1 + 2*i"},
		{New(1, -2), "1 - 2*i"},
		{New(-2, -2), "-2 - 2*i"},
		{New(0.2, -0.4), "0.2 - 0.4*i"},
		{New(2.5, 0.5), "2.5 + 0.5*i"},
		{New(0.0001, 1), "0.0001 + 1*i"},
		{New(1e-5, 0), "1e-05"},
		{New(1.5e16, 0), "1.5e+16"},
		{New(0, -1e20), "-1e+20*i"},
		{New(9999999999999998, 0), "9999999999999998"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := New(1, 2)
	if !a.Equal(New(1, 2)) {
		t.Error("equal values should be Equal")
	}
	if a.Equal(New(3, -4)) {
		t.Error("different values should not be Equal")
	}
	x, y := 0.1, 0.2
	if New(x+y, 0).Equal(New(0.3, 0)) {
		t.Error("Equal must not apply a tolerance")
	}
	if !New(x+y, 0).ApproxEqual(New(0.3, 0), 1e-15) {
		t.Error("ApproxEqual should absorb rounding noise")
	}
	if New(1, 2).ApproxEqual(New(1, 2.1), 0.05) {
		t.Error("ApproxEqual should respect tol")
	}
}

func TestComplex128RoundTrip(t *testing.T) {
	c := New(3, -4)
	if got := FromComplex128(c.Complex128()); !got.Equal(c) {
		t.Errorf("round trip = %v, want %v", got, c)
	}
	if c.Complex128() != complex(3, -4) {
		t.Errorf("Complex128() = %v", c.Complex128())
	}
}

func TestRound(t *testing.T) {
	f := New(math.Sqrt2, math.Pi)
	if got := f.Round(5); !got.Equal(New(1.41421, 3.14159)) {
		t.Errorf("Round(5) = %v", got)
	}
	if got := New(2.675, -0.125).Round(2); !got.Equal(New(2.67, -0.12)) {
		t.Errorf("Round(2) = %v", got)
	}
	if !f.Equal(New(math.Sqrt2, math.Pi)) {
		t.Error("Round must not modify the receiver")
	}
}

func TestArithmetic(t *testing.T) {
	a := New(2, 3)
	b := New(4, -5)

	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"add", a.Add(b), New(6, -2)},
		{"subtract", a.Subtract(b), New(-2, 8)},
		{"multiply", a.Multiply(b), New(23, 2)},
		{"subtract doc", New(1, 2).Subtract(New(3, 4)), New(-2, -2)},
		{"neg", a.Neg(), New(-2, -3)},
		{"conjugate", a.Conjugate(), New(2, -3)},
		{"demo add", New(1, 2).Add(New(3, -4)), New(4, -2)},
		{"demo subtract", New(3, -4).Subtract(New(1, 2)), New(2, -6)},
		{"demo multiply", New(1, 2).Multiply(New(3, -4)), New(11, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if !a.Equal(New(2, 3)) || !b.Equal(New(4, -5)) {
		t.Error("operands must not be modified")
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		a, b Complex
		want Complex
	}{
		{New(4, 6), New(2, 3), New(2, 0)},
		{New(1, 2), New(3, 4), New(0.44, 0.08)},
		{New(1, 2), New(3, -4), New(-0.2, 0.4)},
		{New(5, 0), New(0, 1), New(0, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+" / "+tt.b.String(), func(t *testing.T) {
			got, err := tt.a.Divide(tt.b)
			if err != nil {
				t.Fatalf("Divide() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Divide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := New(1, 2).Divide(Complex{})
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Divide(0) error = %v, want ErrDivisionByZero", err)
	}
	if errors.Is(err, ErrDomain) {
		t.Error("division error must not match ErrDomain")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustDivide(0) should panic")
		}
	}()
	New(1, 2).MustDivide(Complex{})
}

func TestReciprocal(t *testing.T) {
	got, err := New(1, 2).Reciprocal()
	if err != nil || !got.Equal(New(0.2, -0.4)) {
		t.Errorf("Reciprocal(1+2i) = %v, %v", got, err)
	}

	r, err := New(2, 3).Reciprocal()
	if err != nil {
		t.Fatal(err)
	}
	q := New(1, 0).MustDivide(New(2, 3))
	if !r.Equal(q) {
		t.Errorf("Reciprocal() = %v, 1/x = %v", r, q)
	}

	if _, err := (Complex{}).Reciprocal(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Reciprocal(0) error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustReciprocal(0) should panic")
		}
	}()
	Complex{}.MustReciprocal()
}

func TestSqrt(t *testing.T) {
	if got := New(3, 4).Sqrt(); !got.Equal(New(2, 1)) {
		t.Errorf("Sqrt(3+4i) = %v, want 2 + 1*i", got)
	}
	if got := New(3, -4).Sqrt(); !got.Equal(New(2, -1)) {
		t.Errorf("Sqrt(3-4i) = %v, want 2 - 1*i", got)
	}
	if got := New(-4, 0).Sqrt(); !got.Equal(New(0, 2)) {
		t.Errorf("Sqrt(-4) = %v, want 2*i", got)
	}

	want := New(1.272019649514069, 0.7861513777574233)
	if got := New(1, 2).Sqrt(); !got.ApproxEqual(want, 1e-15) {
		t.Errorf("Sqrt(1+2i) = %v, want %v", got, want)
	}

	for _, c := range grid {
		got := c.Sqrt()
		ref := FromComplex128(cmplx.Sqrt(c.Complex128()))
		if !got.ApproxEqual(ref, 1e-9) {
			t.Errorf("Sqrt(%v) = %v, math/cmplx = %v", c, got, ref)
		}
		if got.Real < 0 {
			t.Errorf("Sqrt(%v) has negative real part", c)
		}
		if sq := got.Multiply(got); !sq.ApproxEqual(c, 1e-9*math.Max(1, c.Modulus())) {
			t.Errorf("Sqrt(%v)^2 = %v", c, sq)
		}
	}
}

func TestLog(t *testing.T) {
	got, err := New(0, 1).Log()
	if err != nil || !got.Equal(New(0, math.Pi/2)) {
		t.Errorf("Log(i) = %v, %v", got, err)
	}

	want := New(0.8047189562170503, 1.1071487177940904)
	if got, _ := New(1, 2).Log(); !got.ApproxEqual(want, 1e-15) {
		t.Errorf("Log(1+2i) = %v, want %v", got, want)
	}

	for _, c := range grid {
		got, err := c.Log()
		if err != nil {
			t.Fatalf("Log(%v) error = %v", c, err)
		}
		ref := FromComplex128(cmplx.Log(c.Complex128()))
		if !got.ApproxEqual(ref, 1e-9) {
			t.Errorf("Log(%v) = %v, math/cmplx = %v", c, got, ref)
		}
	}

	if _, err := (Complex{}).Log(); !errors.Is(err, ErrDomain) {
		t.Errorf("Log(0) error = %v, want ErrDomain", err)
	}
}

func TestProperties(t *testing.T) {
	for _, a := range grid {
		for _, b := range grid {
			if !a.Add(b).Equal(b.Add(a)) {
				t.Errorf("%v + %v is not commutative", a, b)
			}
			if !a.Multiply(b).Equal(b.Multiply(a)) {
				t.Errorf("%v * %v is not commutative", a, b)
			}

			q, err := a.Divide(b)
			if err != nil {
				t.Fatalf("%v / %v: %v", a, b, err)
			}
			tol := 1e-9 * math.Max(1, a.Modulus())
			if back := q.Multiply(b); !back.ApproxEqual(a, tol) {
				t.Errorf("(%v / %v) * %v = %v", a, b, b, back)
			}
		}

		if !a.Add(a.Neg()).IsZero() {
			t.Errorf("%v + (-%v) is not zero", a, a)
		}
		if !a.Add(Complex{}.Subtract(a)).IsZero() {
			t.Errorf("%v + (0 - %v) is not zero", a, a)
		}
		if !a.Conjugate().Conjugate().Equal(a) {
			t.Errorf("conj(conj(%v)) != %v", a, a)
		}
		r := a.MustReciprocal()
		if one := a.Multiply(r); !one.ApproxEqual(New(1, 0), 1e-12) {
			t.Errorf("%v * 1/%v = %v", a, a, one)
		}
		if m := a.Multiply(a.Conjugate()); !m.ApproxEqual(New(a.Modulus()*a.Modulus(), 0), 1e-9*math.Max(1, m.Real)) {
			t.Errorf("%v * conj = %v, want |a|^2", a, m)
		}
	}
}
