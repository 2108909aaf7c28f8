package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// World contains all the elements needed for shading a ray. Objects and
// Light may be changed during setup but must not change once rendering starts.
type World struct {
	Objects []*geometry.Sphere // Object order only affects collection order before sorting
	Light   material.PointLight
}

// Option overrides part of a new World
type Option func(*World)

// WithLight replaces the default light
func WithLight(light material.PointLight) Option {
	return func(w *World) {
		w.Light = light
	}
}

// WithObjects appends objects to the world
func WithObjects(objects ...*geometry.Sphere) Option {
	return func(w *World) {
		w.Objects = append(w.Objects, objects...)
	}
}

// DefaultLight returns a white point light above and to the left of the origin
func DefaultLight() material.PointLight {
	return material.NewPointLight(core.Point(-10, 10, -10), core.White)
}

// New creates an empty world lit by DefaultLight
func New(opts ...Option) *World {
	w := &World{
		Objects: make([]*geometry.Sphere, 0),
		Light:   DefaultLight(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddObject appends a sphere to the object list
func (w *World) AddObject(s *geometry.Sphere) {
	w.Objects = append(w.Objects, s)
}

// Intersect collects the intersections of the ray with every object,
// sorted by ascending t
func (w *World) Intersect(ray geometry.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, object := range w.Objects {
		xs = append(xs, object.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ShadeHit returns the color at a prepared intersection. No shadow ray is cast.
func (w *World) ShadeHit(comps geometry.Computation) core.Color {
	return material.Lighting(
		comps.Object.Material(),
		w.Light,
		comps.Point,
		comps.EyeV,
		comps.NormalV,
	)
}

// ColorAt shades the nearest visible hit along the ray, or black on a miss
func (w *World) ColorAt(ray geometry.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(geometry.PrepareComputations(hit, ray))
}

// Validate checks every object's material
func (w *World) Validate() error {
	for i, object := range w.Objects {
		if err := object.Material().Validate(); err != nil {
			return &ObjectError{Index: i, Err: err}
		}
	}
	return nil
}
