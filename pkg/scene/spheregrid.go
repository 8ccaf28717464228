package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	sphereGridSize    = 5
	sphereGridSpacing = 100.0
	sphereGridRadius  = 35.0
	sphereGridFloorY  = -100.0
	floorRadius       = 10000.0
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a 5x5 grid of colored spheres resting on a floor.
// Hue varies along X and chroma along Z; every fourth sphere is glass.
func NewSphereGridScene() *Scene {
	s := NewScene()

	s.AddCamera(geometry.NewCamera(
		core.NewVec3(0, 250, -800),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -50, 200),
		600.0,
	))
	// Overhead view of the grid
	s.AddCamera(geometry.NewCamera(
		core.NewVec3(0, 900, 200),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, 200),
		450.0,
	))
	s.SetActiveCamera(0)

	s.AddLight(lights.NewPointLight(
		core.NewVec3(-300, 800, -300),
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.8, 0.8, 0.8),
		core.NewVec3(0.5, 0.5, 0.5),
	))

	// The floor is a sphere large enough to look flat under the grid
	gray := core.NewVec3(0.5, 0.5, 0.5)
	s.AddSphere(core.NewVec3(0, sphereGridFloorY-floorRadius, 200), floorRadius, material.NewMaterial(gray, gray, core.Vec3{}, 0))

	const (
		baseLightness = 0.65
		minChroma     = 0.05
		maxChroma     = 0.25
	)
	white := core.NewVec3(1, 1, 1)
	half := float64(sphereGridSize-1) / 2

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			center := core.NewVec3(
				(float64(i)-half)*sphereGridSpacing,
				sphereGridFloorY+sphereGridRadius,
				float64(j)*sphereGridSpacing,
			)

			hue := float64(i) / float64(sphereGridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(sphereGridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat material.Material
			if (i+j)%4 == 0 {
				mat = material.NewGlass(core.Vec3{}, color, white, 200, 1.5)
			} else {
				mat = material.NewMaterial(color.Multiply(0.2), color, white, 20+float64(10*j))
			}
			s.AddSphere(center, sphereGridRadius, mat)
		}
	}

	// Center of the grid, after the floor at index 0
	s.SetMovableObject(1 + (sphereGridSize/2)*sphereGridSize + sphereGridSize/2)

	return s
}
