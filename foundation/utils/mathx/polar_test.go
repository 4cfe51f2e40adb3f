// File: polar_test.go
// Title: Polar Form Tests
// Description: Tests for modulus, argument and polar construction.
// Author: idmagic
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial test implementation

package mathx

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestModulus(t *testing.T) {
	tests := []struct {
		c    Complex
		want float64
	}{
		{New(3, 4), 5},
		{New(1, 2), math.Sqrt(5)},
		{New(0, -7), 7},
		{New(0, 0), 0},
	}

	for _, tt := range tests {
		if got := tt.c.Modulus(); got != tt.want {
			t.Errorf("Modulus(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestArgument(t *testing.T) {
	tests := []struct {
		c    Complex
		want float64
	}{
		{New(0, 1), math.Pi / 2},
		{New(0, -1), -math.Pi / 2},
		{New(-1, 0), math.Pi},
		{New(1, 0), 0},
		{New(1, 1), math.Pi / 4},
		{New(0, 0), 0},
	}

	for _, tt := range tests {
		if got := tt.c.Argument(); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Argument(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}

	for _, c := range grid {
		theta := c.Argument()
		if theta <= -math.Pi || theta > math.Pi {
			t.Errorf("Argument(%v) = %v outside (-pi, pi]", c, theta)
		}
		if ref := cmplx.Phase(c.Complex128()); math.Abs(theta-ref) > 1e-15 {
			t.Errorf("Argument(%v) = %v, math/cmplx = %v", c, theta, ref)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, c := range grid {
		r, theta := c.Polar()
		if r != c.Modulus() || theta != c.Argument() {
			t.Errorf("Polar(%v) disagrees with Modulus/Argument", c)
		}
		back := FromPolar(r, theta)
		if !back.ApproxEqual(c, 1e-9*math.Max(1, r)) {
			t.Errorf("FromPolar(Polar(%v)) = %v", c, back)
		}
	}

	if got := FromPolar(2, math.Pi/2); !got.ApproxEqual(New(0, 2), 1e-15) {
		t.Errorf("FromPolar(2, pi/2) = %v", got)
	}
}
