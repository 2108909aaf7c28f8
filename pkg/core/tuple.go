package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tuple is a homogeneous 4 component value. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from raw components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with w=1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with w=0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

func (t Tuple) vec() r3.Vec {
	return r3.Vec{X: t.X, Y: t.Y, Z: t.Z}
}

func fromVec(v r3.Vec, w float64) Tuple {
	return Tuple{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Add returns the sum of two tuples. point+vector is a point, vector+vector is a vector.
func (t Tuple) Add(other Tuple) Tuple {
	return fromVec(r3.Add(t.vec(), other.vec()), t.W+other.W)
}

// Subtract returns the difference of two tuples. point-point is a vector.
func (t Tuple) Subtract(other Tuple) Tuple {
	return fromVec(r3.Sub(t.vec(), other.vec()), t.W-other.W)
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return fromVec(r3.Scale(scalar, t.vec()), t.W*scalar)
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Magnitude returns the length of the xyz part
func (t Tuple) Magnitude() float64 {
	return r3.Norm(t.vec())
}

// Normalize returns a unit vector in the same direction. A zero length
// tuple normalizes to the zero vector.
func (t Tuple) Normalize() Tuple {
	if t.Magnitude() == 0 {
		return Vector(0, 0, 0)
	}
	return fromVec(r3.Unit(t.vec()), t.W)
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return r3.Dot(t.vec(), other.vec()) + t.W*other.W
}

// Cross returns the cross product of the xyz parts as a vector
func (t Tuple) Cross(other Tuple) Tuple {
	return fromVec(r3.Cross(t.vec(), other.vec()), 0)
}

// Reflect mirrors the tuple about the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// ApproxEqual compares tuples component-wise within Epsilon
func (t Tuple) ApproxEqual(other Tuple) bool {
	return ApproxEqual(t.X, other.X) &&
		ApproxEqual(t.Y, other.Y) &&
		ApproxEqual(t.Z, other.Z) &&
		ApproxEqual(t.W, other.W)
}

func (t Tuple) String() string {
	if t.IsPoint() {
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	if t.IsVector() {
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
