package transform

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	return New([][]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return New([][]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// RotationX rotates around the x axis by r radians
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return New([][]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY rotates around the y axis by r radians
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return New([][]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ rotates around the z axis by r radians
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return New([][]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing moves each component in proportion to the other two.
// xy is the amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return New([][]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up core.Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := New([][]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// The chainable forms below append a transform after m, so
// Identity(4).Scale(...).Translate(...) scales first and translates second.

// Translate returns Translation(x, y, z) * m
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale returns Scaling(x, y, z) * m
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX returns RotationX(r) * m
func (m Matrix) RotateX(r float64) Matrix {
	return RotationX(r).Multiply(m)
}

// RotateY returns RotationY(r) * m
func (m Matrix) RotateY(r float64) Matrix {
	return RotationY(r).Multiply(m)
}

// RotateZ returns RotationZ(r) * m
func (m Matrix) RotateZ(r float64) Matrix {
	return RotationZ(r).Multiply(m)
}

// Shear returns Shearing(...) * m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}
