package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 400

	// MovableObject is the default index of the object moved by the viewer keys.
	// In the default scene it is the red glass sphere.
	MovableObject = 3
)

// NewDefaultScene creates four spheres (two glass, two matte) lit by one overhead light
func NewDefaultScene() *Scene {
	s := NewScene()

	s.AddCamera(geometry.NewCamera(
		core.NewVec3(0, 0, -500),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 0),
		500.0,
	))
	s.SetActiveCamera(0)

	s.AddLight(lights.NewPointLight(
		core.NewVec3(0, 1000, 0),
		core.NewVec3(0.0, 0.0, 0.0),
		core.NewVec3(0.7, 0.7, 0.7),
		core.NewVec3(0.3, 0.3, 0.3),
	))

	white := core.NewVec3(1.0, 1.0, 1.0)

	// Green glass, far back
	greenGlass := material.NewGlass(core.NewVec3(0.0, 1.0, 0.0), core.NewVec3(0.7, 1.0, 0.8), white, 300, material.DefaultRefractiveIndex)
	// Matte white spheres
	matte := material.NewMaterial(white, white, white, 0)
	satin := material.NewMaterial(white, white, white, 39)
	// Dense red glass, closest to the camera
	redGlass := material.NewGlass(core.NewVec3(0.0, 0.0, 0.0), core.NewVec3(1.0, 0.0, 0.0), white, 500, 1.61)

	s.AddSphere(core.NewVec3(-130, 80, 200), 100, greenGlass)
	s.AddSphere(core.NewVec3(130, -80, 0), 100, matte)
	s.AddSphere(core.NewVec3(-130, -80, 0), 100, satin)
	s.AddSphere(core.NewVec3(0, -100, -200), 100, redGlass)

	return s
}
