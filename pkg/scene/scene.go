package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	// ErrNoCamera is returned when the scene has no camera to render from
	ErrNoCamera = errors.New("scene has no cameras")
	// ErrIndexOutOfRange is returned when a camera or object index is invalid
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Object is a shape paired with the material it is shaded with
type Object struct {
	Shape    geometry.Shape
	Material material.Material
}

// NewObject creates a new scene object
func NewObject(shape geometry.Shape, mat material.Material) *Object {
	return &Object{Shape: shape, Material: mat}
}

// Scene owns the objects, lights and cameras of a render.
//
// Mutating methods take the write lock. Accessors do not lock: a renderer holds
// RLock for a whole frame pass so that no mutation lands mid-frame.
type Scene struct {
	mu           sync.RWMutex
	name         string
	description  string
	objects      []*Object
	lights       []lights.PointLight
	cameras      []geometry.Camera
	activeCamera int
	movable      int // Object moved by the interactive controls
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		objects: make([]*Object, 0),
		lights:  make([]lights.PointLight, 0),
		cameras: make([]geometry.Camera, 0),
		movable: MovableObject,
	}
}

// RLock acquires the scene read lock
func (s *Scene) RLock() { s.mu.RLock() }

// RUnlock releases the scene read lock
func (s *Scene) RUnlock() { s.mu.RUnlock() }

// AddObject adds an object to the scene and returns its index
func (s *Scene) AddObject(obj *Object) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, obj)
	return len(s.objects) - 1
}

// AddSphere adds a sphere with the given material and returns its index
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) int {
	return s.AddObject(NewObject(geometry.NewSphere(center, radius), mat))
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, light)
}

// AddCamera adds a camera to the scene and returns its index
func (s *Scene) AddCamera(camera geometry.Camera) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras = append(s.cameras, camera)
	return len(s.cameras) - 1
}

// SetActiveCamera selects the camera to render from. Invalid indices are ignored.
func (s *Scene) SetActiveCamera(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.cameras) {
		s.activeCamera = i
	}
}

// MoveCamera places camera i at pos
func (s *Scene) MoveCamera(i int, pos core.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cameras) {
		return fmt.Errorf("camera %d: %w", i, ErrIndexOutOfRange)
	}
	s.cameras[i].Position = pos
	return nil
}

// SetInfo sets the display name and description carried into scene files
func (s *Scene) SetInfo(name, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.description = description
}

// Name returns the display name of the scene
func (s *Scene) Name() string {
	return s.name
}

// Description returns the description of the scene
func (s *Scene) Description() string {
	return s.description
}

// SetMovableObject selects the object moved by the interactive controls
func (s *Scene) SetMovableObject(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.objects) {
		return fmt.Errorf("object %d: %w", i, ErrIndexOutOfRange)
	}
	s.movable = i
	return nil
}

// MovableObjectIndex returns the index of the object moved by the interactive controls
func (s *Scene) MovableObjectIndex() int {
	return s.movable
}

// ActiveCameraIndex returns the index of the active camera
func (s *Scene) ActiveCameraIndex() int {
	return s.activeCamera
}

// ActiveCamera returns the camera frames are rendered from
func (s *Scene) ActiveCamera() (geometry.Camera, error) {
	if len(s.cameras) == 0 {
		return geometry.Camera{}, ErrNoCamera
	}
	return s.cameras[s.activeCamera], nil
}

// GetObjects returns the objects in the scene
func (s *Scene) GetObjects() []*Object {
	return s.objects
}

// GetLights returns the lights in the scene
func (s *Scene) GetLights() []lights.PointLight {
	return s.lights
}

// GetCameras returns the cameras in the scene
func (s *Scene) GetCameras() []geometry.Camera {
	return s.cameras
}
