package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Lighting evaluates the Phong model at point for a viewer along eyev.
// eyev and normalv must be unit vectors. Occlusion is not considered.
func Lighting(m Material, light PointLight, point, eyev, normalv core.Tuple) core.Color {
	effectiveColor := m.Color.MultiplyColor(light.Intensity)
	lightv := light.Position.Subtract(point).Normalize()
	ambient := effectiveColor.Multiply(m.Ambient)

	// Light on the far side of the surface only contributes ambient
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
