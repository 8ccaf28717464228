package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrInvalidScene is returned when a scene description fails validation
var ErrInvalidScene = errors.New("invalid scene description")

// vec3 is a Vec3 written as a JSON [x, y, z] array
type vec3 [3]float64

func (v vec3) toVec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

func fromVec3(v core.Vec3) vec3 { return vec3{v.X, v.Y, v.Z} }

// File is the JSON form of a scene
type File struct {
	Name         string         `json:"name,omitempty"`
	Description  string         `json:"description,omitempty"`
	Cameras      []CameraConfig `json:"cameras"`
	ActiveCamera int            `json:"activeCamera"`
	// Object moved by the interactive controls; omitted means MovableObject
	// when the scene has that many spheres, otherwise the last sphere
	Movable      *int           `json:"movable,omitempty"`
	Lights       []LightConfig  `json:"lights"`
	Spheres      []SphereConfig `json:"spheres"`
}

type CameraConfig struct {
	Position    vec3    `json:"position"`
	Up          vec3    `json:"up"`
	LookAt      vec3    `json:"lookAt"`
	FocalLength float64 `json:"focalLength"`
}

type LightConfig struct {
	Position vec3 `json:"position"`
	Ambient  vec3 `json:"ambient"`
	Diffuse  vec3 `json:"diffuse"`
	Specular vec3 `json:"specular"`
}

type SphereConfig struct {
	Center    vec3    `json:"center"`
	Radius    float64 `json:"radius"`
	Ambient   vec3    `json:"ambient"`
	Diffuse   vec3    `json:"diffuse"`
	Specular  vec3    `json:"specular"`
	Shininess float64 `json:"shininess"`
	Glass     bool    `json:"glass,omitempty"`
	// Omitted means material.DefaultRefractiveIndex
	RefractiveIndex *float64 `json:"refractiveIndex,omitempty"`
}

// Load reads a Scene from a JSON file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Save writes a Scene to a JSON file.
func Save(path string, s *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	return Encode(f, s)
}

// Decode reads and validates a JSON scene description
func Decode(r io.Reader) (*Scene, error) {
	var file File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return file.Build()
}

// Encode writes the scene as indented JSON
func Encode(w io.Writer, s *Scene) error {
	file, err := ToFile(s)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Build validates the description and constructs the scene
func (f File) Build() (*Scene, error) {
	s := NewScene()

	for i, c := range f.Cameras {
		if c.FocalLength <= 0 {
			return nil, fmt.Errorf("camera %d: focal length %g: %w", i, c.FocalLength, ErrInvalidScene)
		}
		s.AddCamera(geometry.NewCamera(c.Position.toVec3(), c.Up.toVec3(), c.LookAt.toVec3(), c.FocalLength))
	}
	if f.ActiveCamera < 0 || (f.ActiveCamera > 0 && f.ActiveCamera >= len(f.Cameras)) {
		return nil, fmt.Errorf("active camera %d: %w", f.ActiveCamera, ErrInvalidScene)
	}
	s.SetActiveCamera(f.ActiveCamera)

	for _, l := range f.Lights {
		s.AddLight(lights.NewPointLight(l.Position.toVec3(), l.Ambient.toVec3(), l.Diffuse.toVec3(), l.Specular.toVec3()))
	}

	for i, sp := range f.Spheres {
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius %g: %w", i, sp.Radius, ErrInvalidScene)
		}
		mat := material.NewMaterial(sp.Ambient.toVec3(), sp.Diffuse.toVec3(), sp.Specular.toVec3(), sp.Shininess)
		mat.Glass = sp.Glass
		if sp.RefractiveIndex != nil {
			if *sp.RefractiveIndex <= 0 {
				return nil, fmt.Errorf("sphere %d: refractive index %g: %w", i, *sp.RefractiveIndex, ErrInvalidScene)
			}
			mat.RefractiveIndex = *sp.RefractiveIndex
		}
		s.AddSphere(sp.Center.toVec3(), sp.Radius, mat)
	}

	switch {
	case f.Movable != nil:
		if err := s.SetMovableObject(*f.Movable); err != nil {
			return nil, fmt.Errorf("movable: %w: %w", err, ErrInvalidScene)
		}
	case len(f.Spheres) > 0:
		s.SetMovableObject(min(MovableObject, len(f.Spheres)-1))
	}

	s.SetInfo(f.Name, f.Description)

	return s, nil
}

// ToFile converts a scene into its JSON form
func ToFile(s *Scene) (File, error) {
	s.RLock()
	defer s.RUnlock()

	movable := s.movable
	file := File{
		Name:         s.name,
		Description:  s.description,
		Cameras:      make([]CameraConfig, 0, len(s.cameras)),
		ActiveCamera: s.activeCamera,
		Lights:       make([]LightConfig, 0, len(s.lights)),
		Spheres:      make([]SphereConfig, 0, len(s.objects)),
	}

	if movable >= 0 && movable < len(s.objects) {
		file.Movable = &movable
	}

	for _, c := range s.cameras {
		file.Cameras = append(file.Cameras, CameraConfig{
			Position:    fromVec3(c.Position),
			Up:          fromVec3(c.Up),
			LookAt:      fromVec3(c.LookAt),
			FocalLength: c.FocalLength,
		})
	}

	for _, l := range s.lights {
		file.Lights = append(file.Lights, LightConfig{
			Position: fromVec3(l.Position),
			Ambient:  fromVec3(l.Ambient),
			Diffuse:  fromVec3(l.Diffuse),
			Specular: fromVec3(l.Specular),
		})
	}

	for i, obj := range s.objects {
		sphere, ok := obj.Shape.(*geometry.Sphere)
		if !ok {
			return File{}, fmt.Errorf("object %d: unsupported shape %T", i, obj.Shape)
		}
		refractiveIndex := obj.Material.RefractiveIndex
		file.Spheres = append(file.Spheres, SphereConfig{
			Center:          fromVec3(sphere.Center),
			Radius:          sphere.Radius,
			Ambient:         fromVec3(obj.Material.Ambient),
			Diffuse:         fromVec3(obj.Material.Diffuse),
			Specular:        fromVec3(obj.Material.Specular),
			Shininess:       obj.Material.Shininess,
			Glass:           obj.Material.Glass,
			RefractiveIndex: &refractiveIndex,
		})
	}

	return file, nil
}
