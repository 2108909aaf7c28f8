package material

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong reflection coefficients of a surface
type Material struct {
	Color     core.Color // Base surface color
	Ambient   float64    // Fraction of light reflected regardless of orientation
	Diffuse   float64    // Matte reflection weight
	Specular  float64    // Highlight weight
	Shininess float64    // Highlight tightness, larger is smaller and sharper
}

// DefaultMaterial returns a white material with a soft highlight
func DefaultMaterial() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// NewMaterial creates a material from explicit coefficients
func NewMaterial(color core.Color, ambient, diffuse, specular, shininess float64) Material {
	return Material{
		Color:     color,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// Validate checks that the coefficients are in range
func (m Material) Validate() error {
	if m.Ambient < 0 || m.Diffuse < 0 || m.Specular < 0 {
		return fmt.Errorf("material coefficients must be non-negative (ambient=%g diffuse=%g specular=%g)",
			m.Ambient, m.Diffuse, m.Specular)
	}
	if m.Shininess <= 0 {
		return fmt.Errorf("material shininess must be positive, got %g", m.Shininess)
	}
	return nil
}
