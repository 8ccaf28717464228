package scene

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const simpleSceneJSON = `{
  "cameras": [
    {"position": [0, 0, -10], "up": [0, 1, 0], "lookAt": [0, 0, 0], "focalLength": 10}
  ],
  "lights": [
    {"position": [0, 10, 0], "ambient": [0.1, 0.1, 0.1], "diffuse": [1, 1, 1], "specular": [0, 0, 0]}
  ],
  "spheres": [
    {"center": [0, 0, 0], "radius": 2, "ambient": [1, 0, 0], "diffuse": [1, 0, 0], "specular": [1, 1, 1], "shininess": 10},
    {"center": [3, 0, 0], "radius": 1, "ambient": [0, 0, 0], "diffuse": [1, 1, 1], "specular": [1, 1, 1], "shininess": 100, "glass": true, "refractiveIndex": 1.5}
  ]
}`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(simpleSceneJSON))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	camera, err := s.ActiveCamera()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if camera.Position != core.NewVec3(0, 0, -10) || camera.FocalLength != 10 {
		t.Errorf("Unexpected camera %+v", camera)
	}

	objects := s.GetObjects()
	if len(objects) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(objects))
	}
	if objects[0].Material.RefractiveIndex != material.DefaultRefractiveIndex {
		t.Errorf("Expected default refractive index, got %f", objects[0].Material.RefractiveIndex)
	}
	if !objects[1].Material.Glass || objects[1].Material.RefractiveIndex != 1.5 {
		t.Errorf("Expected glass sphere with index 1.5, got %+v", objects[1].Material)
	}
	if sphere := objects[1].Shape.(*geometry.Sphere); sphere.Center != core.NewVec3(3, 0, 0) {
		t.Errorf("Expected center (3, 0, 0), got %v", sphere.Center)
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		invalidDesc bool
	}{
		{"malformed json", `{"cameras": [`, false},
		{"unknown field", `{"planes": []}`, false},
		{"zero radius", `{"spheres": [{"center": [0, 0, 0], "radius": 0}]}`, true},
		{"zero focal length", `{"cameras": [{"position": [0, 0, 0], "up": [0, 1, 0], "lookAt": [0, 0, 1], "focalLength": 0}]}`, true},
		{"active camera out of range", `{"activeCamera": 2, "cameras": []}`, true},
		{"zero refractive index", `{"spheres": [{"center": [0, 0, 0], "radius": 1, "glass": true, "refractiveIndex": 0}]}`, true},
		{"negative refractive index", `{"spheres": [{"center": [0, 0, 0], "radius": 1, "glass": true, "refractiveIndex": -1.5}]}`, true},
		{"movable out of range", `{"movable": 1, "spheres": [{"center": [0, 0, 0], "radius": 1}]}`, true},
		{"negative movable", `{"movable": -1, "spheres": [{"center": [0, 0, 0], "radius": 1}]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if s != nil {
				t.Errorf("Expected nil scene, got %v", s)
			}
			if errors.Is(err, ErrInvalidScene) != tt.invalidDesc {
				t.Errorf("Unexpected error kind: %v", err)
			}
		})
	}
}

func TestDecode_Movable(t *testing.T) {
	sphere := `{"center": [0, 0, 0], "radius": 1}`
	spheres := func(n int) string {
		return strings.TrimSuffix(strings.Repeat(sphere+",", n), ",")
	}

	tests := []struct {
		name     string
		json     string
		expected int
	}{
		{"omitted with enough spheres", `{"spheres": [` + spheres(5) + `]}`, MovableObject},
		{"omitted with few spheres", `{"spheres": [` + spheres(2) + `]}`, 1},
		{"omitted without spheres", `{"spheres": []}`, MovableObject},
		{"explicit", `{"movable": 0, "spheres": [` + spheres(5) + `]}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.json))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := s.MovableObjectIndex(); got != tt.expected {
				t.Errorf("Expected movable object %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSaveLoad_KeepsMetadata(t *testing.T) {
	const input = `{
  "name": "Glass Pair",
  "description": "Two spheres, one of them glass",
  "movable": 0,
  "cameras": [
    {"position": [0, 0, -10], "up": [0, 1, 0], "lookAt": [0, 0, 0], "focalLength": 10}
  ],
  "lights": [],
  "spheres": [
    {"center": [0, 0, 0], "radius": 2},
    {"center": [3, 0, 0], "radius": 1, "glass": true, "refractiveIndex": 1.5}
  ]
}`
	original, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "pair.json")
	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Name() != "Glass Pair" {
		t.Errorf("Expected name %q, got %q", "Glass Pair", loaded.Name())
	}
	if loaded.Description() != "Two spheres, one of them glass" {
		t.Errorf("Expected description %q, got %q", "Two spheres, one of them glass", loaded.Description())
	}
	if loaded.MovableObjectIndex() != 0 {
		t.Errorf("Expected movable object 0, got %d", loaded.MovableObjectIndex())
	}

	// Saved files stay discoverable under their own name
	info, err := ParseSceneMetadata(path)
	if err != nil {
		t.Fatalf("ParseSceneMetadata failed: %v", err)
	}
	if info.Name != "Glass Pair" || info.Description != "Two spheres, one of them glass" {
		t.Errorf("Unexpected metadata %+v", info)
	}
}

func TestSaveLoad_DefaultScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.json")
	original := NewDefaultScene()

	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.GetObjects()) != len(original.GetObjects()) {
		t.Fatalf("Expected %d objects, got %d", len(original.GetObjects()), len(loaded.GetObjects()))
	}
	for i, obj := range loaded.GetObjects() {
		want := original.GetObjects()[i]
		if obj.Material != want.Material {
			t.Errorf("Object %d: expected material %+v, got %+v", i, want.Material, obj.Material)
		}
		if *obj.Shape.(*geometry.Sphere) != *want.Shape.(*geometry.Sphere) {
			t.Errorf("Object %d: expected shape %+v, got %+v", i, want.Shape, obj.Shape)
		}
	}
	if loaded.GetCameras()[0] != original.GetCameras()[0] {
		t.Errorf("Expected camera %+v, got %+v", original.GetCameras()[0], loaded.GetCameras()[0])
	}
	if loaded.GetLights()[0] != original.GetLights()[0] {
		t.Errorf("Expected light %+v, got %+v", original.GetLights()[0], loaded.GetLights()[0])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
