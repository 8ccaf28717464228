package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestPointLight_Shade(t *testing.T) {
	light := NewPointLight(
		core.NewVec3(0, 10, 0),
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.7, 0.7, 0.7),
		core.NewVec3(0.3, 0.3, 0.3),
	)
	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		material material.Material
		view     core.Vec3
		expected core.Vec3
	}{
		{
			name:     "ambient only",
			material: material.NewMaterial(core.NewVec3(1, 0.5, 0), core.Vec3{}, core.Vec3{}, 1),
			view:     core.NewVec3(0, 1, 0),
			expected: core.NewVec3(0.1, 0.05, 0),
		},
		{
			name:     "diffuse facing light",
			material: material.NewMaterial(core.Vec3{}, core.NewVec3(1, 1, 1), core.Vec3{}, 1),
			view:     core.NewVec3(1, 0, 0),
			expected: core.NewVec3(0.7, 0.7, 0.7),
		},
		{
			name:     "specular aligned with mirror direction",
			material: material.NewMaterial(core.Vec3{}, core.Vec3{}, core.NewVec3(1, 0, 1), 50),
			view:     core.NewVec3(0, 1, 0),
			expected: core.NewVec3(0.3, 0, 0.3),
		},
		{
			name:     "specular perpendicular to mirror direction",
			material: material.NewMaterial(core.Vec3{}, core.Vec3{}, core.NewVec3(1, 1, 1), 50),
			view:     core.NewVec3(1, 0, 0),
			expected: core.NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := light.Shade(tt.material, point, normal, tt.view)
			if color.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPointLight_Shade_BehindSurface(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, -10, 0), core.Vec3{}, core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))
	m := material.NewMaterial(core.Vec3{}, core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 10)

	color := light.Shade(m, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	if color != (core.Vec3{}) {
		t.Errorf("Expected no contribution from a light behind the surface, got %v", color)
	}
}

func TestPointLight_Shade_ZeroShininess(t *testing.T) {
	// max(0, R.V)^0 is 1 for any view direction
	light := NewPointLight(core.NewVec3(0, 10, 0), core.Vec3{}, core.Vec3{}, core.NewVec3(0.3, 0.3, 0.3))
	m := material.NewMaterial(core.Vec3{}, core.Vec3{}, core.NewVec3(1, 1, 1), 0)

	color := light.Shade(m, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))
	if math.Abs(color.X-0.3) > 1e-12 {
		t.Errorf("Expected specular 0.3, got %v", color)
	}
}
