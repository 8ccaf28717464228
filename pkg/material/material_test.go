package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewMaterial_Defaults(t *testing.T) {
	m := NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0, 0, 0), 10)

	if m.Glass {
		t.Error("Expected opaque material")
	}
	if m.RefractiveIndex != DefaultRefractiveIndex {
		t.Errorf("Expected refractive index %f, got %f", DefaultRefractiveIndex, m.RefractiveIndex)
	}
}

func TestNewGlass(t *testing.T) {
	m := NewGlass(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 1), 500, 1.61)

	if !m.Glass {
		t.Error("Expected glass material")
	}
	if m.RefractiveIndex != 1.61 {
		t.Errorf("Expected refractive index 1.61, got %f", m.RefractiveIndex)
	}
}

func TestMaterial_RefractionIndices(t *testing.T) {
	m := NewGlass(core.Vec3{}, core.Vec3{}, core.Vec3{}, 0, 1.5)

	tests := []struct {
		name   string
		inside bool
		n1, n2 float64
	}{
		{"entering", false, 1.0, 1.5},
		{"exiting", true, 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n1, n2 := m.RefractionIndices(tt.inside)
			if n1 != tt.n1 || n2 != tt.n2 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.n1, tt.n2, n1, n2)
			}
		})
	}
}
