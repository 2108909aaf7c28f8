package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/transform"
)

// Sphere is a unit sphere centered at its local origin. Its world space
// shape is its transform applied to that canonical sphere.
type Sphere struct {
	transform  transform.Matrix
	inverse    transform.Matrix
	normalMat  transform.Matrix // transpose of inverse
	invertible bool
	material   material.Material
}

// NewSphere creates a unit sphere with the identity transform and the default material
func NewSphere() *Sphere {
	s := &Sphere{material: material.DefaultMaterial()}
	s.setTransform(transform.Identity(4))
	return s
}

func (s *Sphere) setTransform(m transform.Matrix) {
	s.transform = m
	inv, err := m.Inverse()
	s.invertible = err == nil
	if s.invertible {
		s.inverse = inv
		s.normalMat = inv.Transpose()
	}
}

// WithTransform returns a copy of the sphere with its whole transform replaced
func (s *Sphere) WithTransform(m transform.Matrix) *Sphere {
	out := &Sphere{material: s.material}
	out.setTransform(m)
	return out
}

// WithMaterial returns a copy of the sphere with its material replaced
func (s *Sphere) WithMaterial(m material.Material) *Sphere {
	out := *s
	out.material = m
	return &out
}

// Transform returns the object to world transform
func (s *Sphere) Transform() transform.Matrix {
	return s.transform
}

// Material returns the surface material
func (s *Sphere) Material() material.Material {
	return s.material
}

// Invertible reports whether the transform has an inverse. Spheres
// flattened by a singular transform are never hit.
func (s *Sphere) Invertible() bool {
	return s.invertible
}

// Intersect tests the ray against the sphere in object space. Both roots
// are returned in ascending order regardless of sign.
func (s *Sphere) Intersect(ray Ray) Intersections {
	if !s.invertible {
		return nil
	}
	local := ray.Transform(s.inverse)

	// Vector from sphere center to ray origin
	sr := local.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sr)
	c := sr.Dot(sr) - 1

	if a == 0 {
		return nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	return Intersections{NewIntersection(t1, s), NewIntersection(t2, s)}
}

// NormalAt returns the unit world space normal at a world space point on the surface
func (s *Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	if !s.invertible {
		return core.Vector(0, 0, 0)
	}
	objectPoint := s.inverse.Apply(worldPoint)
	objectNormal := objectPoint.Subtract(core.Point(0, 0, 0))
	worldNormal := s.normalMat.Apply(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
