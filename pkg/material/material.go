package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

const (
	// DefaultRefractiveIndex is used when a material does not override it
	DefaultRefractiveIndex = 1.003
	// VacuumRefractiveIndex is the index on the non-glass side of every boundary
	VacuumRefractiveIndex = 1.0
)

// Material holds Phong shading coefficients plus glass parameters
type Material struct {
	Ambient   core.Vec3 // Tints the light's ambient term
	Diffuse   core.Vec3 // Tints the light's diffuse term and the glass contribution
	Specular  core.Vec3 // Tints the light's specular term and totally reflected light
	Shininess float64   // Phong specular exponent

	Glass           bool    // Spawns reflection and refraction rays
	RefractiveIndex float64 // Index of refraction inside the object
}

// NewMaterial creates an opaque Phong material
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float64) Material {
	return Material{
		Ambient:         ambient,
		Diffuse:         diffuse,
		Specular:        specular,
		Shininess:       shininess,
		RefractiveIndex: DefaultRefractiveIndex,
	}
}

// NewGlass creates a glass material with the given refractive index
func NewGlass(ambient, diffuse, specular core.Vec3, shininess, refractiveIndex float64) Material {
	m := NewMaterial(ambient, diffuse, specular, shininess)
	m.Glass = true
	m.RefractiveIndex = refractiveIndex
	return m
}

// RefractionIndices returns the indices on the incident (n1) and transmitted (n2)
// sides of the surface, depending on whether the ray starts inside the object.
func (m Material) RefractionIndices(inside bool) (n1, n2 float64) {
	if inside {
		return m.RefractiveIndex, VacuumRefractiveIndex
	}
	return VacuumRefractiveIndex, m.RefractiveIndex
}
