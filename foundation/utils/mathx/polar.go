// File: polar.go
// Title: Polar Form
// Description: Modulus, argument and construction from polar coordinates.
// Author: idmagic
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package mathx

import "math"

// Modulus returns |c|
func (c Complex) Modulus() float64 {
	return math.Sqrt(c.Real*c.Real + c.Imag*c.Imag)
}

// Argument returns the angle of c in (-π, π]. The argument of zero is
// reported as 0 but is mathematically undefined.
func (c Complex) Argument() float64 {
	return math.Atan2(c.Imag, c.Real)
}

// Polar returns the modulus and argument of c
func (c Complex) Polar() (r, theta float64) {
	return c.Modulus(), c.Argument()
}

// FromPolar builds r·cos θ + r·sin θ·i
func FromPolar(r, theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{Real: r * cos, Imag: r * sin}
}
