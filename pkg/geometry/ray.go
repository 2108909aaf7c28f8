package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/transform"
)

// Ray represents a ray with an origin and direction. The direction does
// not have to be unit length.
type Ray struct {
	Origin    core.Tuple
	Direction core.Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction core.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) core.Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to both origin and direction
func (r Ray) Transform(m transform.Matrix) Ray {
	return Ray{Origin: m.Apply(r.Origin), Direction: m.Apply(r.Direction)}
}

// Intersect returns every intersection of the ray with s in ascending t order
func (r Ray) Intersect(s *Sphere) Intersections {
	return s.Intersect(r)
}

func (r Ray) String() string {
	return fmt.Sprintf("ray(%v -> %v)", r.Origin, r.Direction)
}
