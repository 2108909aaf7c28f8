package core

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the tolerance used for floating point comparisons
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by no more than Epsilon
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}
