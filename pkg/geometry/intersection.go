package geometry

import (
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection records a ray hit at parameter T. Object refers to the
// sphere that was hit and is never copied.
type Intersection struct {
	T      float64
	Object *Sphere
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Sphere) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of hits, kept in ascending T order
type Intersections []Intersection

// Sort orders the list by ascending T. Ties keep their relative order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the lowest positive T
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T > 0 && (!found || x.T < hit.T) {
			hit = x
			found = true
		}
	}
	return hit, found
}

// Computation is the shading context at an intersection. EyeV and NormalV
// are unit length and in world space.
type Computation struct {
	T       float64
	Object  *Sphere
	Point   core.Tuple
	EyeV    core.Tuple
	NormalV core.Tuple
	Inside  bool // The ray started inside the object, NormalV has been flipped
}

// PrepareComputations derives the shading context for hit along ray
func PrepareComputations(hit Intersection, ray Ray) Computation {
	point := ray.Position(hit.T)
	comps := Computation{
		T:       hit.T,
		Object:  hit.Object,
		Point:   point,
		EyeV:    ray.Direction.Negate().Normalize(),
		NormalV: hit.Object.NormalAt(point),
	}

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	return comps
}
