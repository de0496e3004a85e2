// Package mutil holds the floating point comparison and rounding helpers
// shared by the point and bounding box types.
package mutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// Precision is the number of decimals used when printing coordinates.
	Precision = 12
	// Epsilon is the default tolerance for NearlyEqual.
	Epsilon = 1.0e-12
)

// Scalar is a constraint for the coordinate types the geometry packages
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// NearlyEqual reports whether a and b are equal or closer than eps.
// Equal infinities compare equal.
func NearlyEqual(a, b, eps float64) bool {
	return a == b || math.Abs(a-b) < eps
}

// Feq is NearlyEqual with the default Epsilon.
func Feq(a, b float64) bool {
	return NearlyEqual(a, b, Epsilon)
}

// RoundHalfAway rounds f to the nearest whole number, halves away from zero.
func RoundHalfAway(f float64) float64 {
	return math.Trunc(f + math.Copysign(0.5, f))
}

// Round rounds x to the given number of decimal places.
func Round(x float64, digits int) float64 {
	m := math.Pow(10, float64(digits))
	return RoundHalfAway(x*m) / m
}

// Integral reports whether T is an integer type.
func Integral[T Scalar]() bool {
	var one T = 1
	return one/2 == 0
}

// Equal compares two coordinates: exactly for integer types, within
// Epsilon for floating point types.
func Equal[T Scalar](a, b T) bool {
	if Integral[T]() {
		return a == b
	}
	return Feq(float64(a), float64(b))
}

// Min returns the smaller of a and b. A NaN operand is ignored in favour
// of the other one.
func Min[T Scalar](a, b T) T {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b. A NaN operand is ignored in favour
// of the other one.
func Max[T Scalar](a, b T) T {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b > a {
		return b
	}
	return a
}
