package controls

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Command is an interactive scene edit bound to a key
type Command int

const (
	ObjectUp Command = iota
	ObjectDown
	ObjectLeft
	ObjectRight
	CameraUp
	CameraDown
	CameraLeft
	CameraRight
	NextCamera
)

// Step sizes in world units
const (
	ObjectStepY = 50.0
	ObjectStepX = 5.0
	CameraStep  = 10.0
)

func (c Command) String() string {
	switch c {
	case ObjectUp:
		return "object-up"
	case ObjectDown:
		return "object-down"
	case ObjectLeft:
		return "object-left"
	case ObjectRight:
		return "object-right"
	case CameraUp:
		return "camera-up"
	case CameraDown:
		return "camera-down"
	case CameraLeft:
		return "camera-left"
	case CameraRight:
		return "camera-right"
	case NextCamera:
		return "next-camera"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Event returns the mutation for a movement command. Object commands move the
// object at index movable. NextCamera has no event.
func (c Command) Event(activeCamera, movable int) (scene.Event, bool) {
	switch c {
	case ObjectUp:
		return scene.MoveObject(movable, core.NewVec3(0, ObjectStepY, 0)), true
	case ObjectDown:
		return scene.MoveObject(movable, core.NewVec3(0, -ObjectStepY, 0)), true
	case ObjectLeft:
		return scene.MoveObject(movable, core.NewVec3(-ObjectStepX, 0, 0)), true
	case ObjectRight:
		return scene.MoveObject(movable, core.NewVec3(ObjectStepX, 0, 0)), true
	case CameraUp:
		return scene.MoveCameraBy(activeCamera, core.NewVec3(0, CameraStep, 0)), true
	case CameraDown:
		return scene.MoveCameraBy(activeCamera, core.NewVec3(0, -CameraStep, 0)), true
	case CameraLeft:
		return scene.MoveCameraBy(activeCamera, core.NewVec3(-CameraStep, 0, 0)), true
	case CameraRight:
		return scene.MoveCameraBy(activeCamera, core.NewVec3(CameraStep, 0, 0)), true
	default:
		return scene.Event{}, false
	}
}

// Apply runs a command against the scene
func Apply(s *scene.Scene, c Command) error {
	s.RLock()
	active := s.ActiveCameraIndex()
	cameras := len(s.GetCameras())
	movable := s.MovableObjectIndex()
	s.RUnlock()

	if c == NextCamera {
		if cameras > 0 {
			s.SetActiveCamera((active + 1) % cameras)
		}
		return nil
	}

	event, ok := c.Event(active, movable)
	if !ok {
		return fmt.Errorf("unknown command %v", c)
	}
	if err := s.Apply(event); err != nil {
		return fmt.Errorf("%v: %w", c, err)
	}
	return nil
}
