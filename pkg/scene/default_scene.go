package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/transform"
)

// View is the recommended camera placement for a scene
type View struct {
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
	FieldOfView float64 // Radians
}

// DefaultView looks at the origin from five units down the negative z axis
func DefaultView() View {
	return View{
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 2,
	}
}

// Default creates the reference world: a lit unit sphere with a
// half-size sphere inside it
func Default(opts ...Option) *World {
	outer := geometry.NewSphere().WithMaterial(material.NewMaterial(
		core.NewColor(0.8, 1.0, 0.6),
		0.1,   // ambient
		0.7,   // diffuse
		0.2,   // specular
		200.0, // shininess
	))
	inner := geometry.NewSphere().WithTransform(transform.Scaling(0.5, 0.5, 0.5))

	return New(append([]Option{WithObjects(outer, inner)}, opts...)...)
}

// NewThreeSpheresScene creates three colored spheres resting on a floor in
// front of two walls. The floor and walls are spheres flattened to 0.01.
func NewThreeSpheresScene(opts ...Option) (*World, View) {
	wallMaterial := material.DefaultMaterial()
	wallMaterial.Color = core.NewColor(1, 0.9, 0.9)
	wallMaterial.Specular = 0

	flat := transform.Scaling(10, 0.01, 10)

	floor := geometry.NewSphere().
		WithTransform(flat).
		WithMaterial(wallMaterial)

	leftWall := geometry.NewSphere().
		WithTransform(flat.RotateX(math.Pi/2).RotateY(-math.Pi/4).Translate(0, 0, 5)).
		WithMaterial(wallMaterial)

	rightWall := geometry.NewSphere().
		WithTransform(flat.RotateX(math.Pi/2).RotateY(math.Pi/4).Translate(0, 0, 5)).
		WithMaterial(wallMaterial)

	middle := geometry.NewSphere().
		WithTransform(transform.Translation(-0.5, 1, 0.5)).
		WithMaterial(material.NewMaterial(core.NewColor(0.1, 1, 0.5), 0.1, 0.7, 0.3, 200))

	right := geometry.NewSphere().
		WithTransform(transform.Identity(4).Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5)).
		WithMaterial(material.NewMaterial(core.NewColor(0.5, 1, 0.1), 0.1, 0.7, 0.3, 200))

	left := geometry.NewSphere().
		WithTransform(transform.Identity(4).Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75)).
		WithMaterial(material.NewMaterial(core.NewColor(1, 0.8, 0.1), 0.1, 0.7, 0.3, 200))

	w := New(append([]Option{WithObjects(floor, leftWall, rightWall, middle, right, left)}, opts...)...)

	view := View{
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 3,
	}
	return w, view
}
