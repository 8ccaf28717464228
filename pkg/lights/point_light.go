package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// PointLight is an unattenuated point light with separate Phong color terms
type PointLight struct {
	Position core.Vec3
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, ambient, diffuse, specular core.Vec3) PointLight {
	return PointLight{
		Position: position,
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// Shade returns the Phong contribution of this light at point, for a surface
// with unit normal and unit view vector (both pointing away from the surface).
// Occluders are ignored.
func (l PointLight) Shade(m material.Material, point, normal, view core.Vec3) core.Vec3 {
	toLight := l.Position.Subtract(point).Normalize()
	reflected := material.Mirror(toLight, normal)

	ambient := m.Ambient.MultiplyVec(l.Ambient)
	diffuse := m.Diffuse.MultiplyVec(l.Diffuse).Multiply(math.Max(0, toLight.Dot(normal)))
	specular := m.Specular.MultiplyVec(l.Specular).Multiply(math.Pow(math.Max(0, reflected.Dot(view)), m.Shininess))

	return ambient.Add(diffuse).Add(specular)
}
