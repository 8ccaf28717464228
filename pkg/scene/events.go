package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnknownTarget is returned for events that name neither a camera nor an object
var ErrUnknownTarget = errors.New("unknown event target")

// Target selects what a mutation event moves
type Target string

const (
	TargetCamera Target = "camera"
	TargetObject Target = "object"
)

// Event translates a camera or an object by Delta
type Event struct {
	Target Target
	Index  int
	Delta  core.Vec3
}

// MoveObject returns an event translating object i by delta
func MoveObject(i int, delta core.Vec3) Event {
	return Event{Target: TargetObject, Index: i, Delta: delta}
}

// MoveCameraBy returns an event translating camera i by delta
func MoveCameraBy(i int, delta core.Vec3) Event {
	return Event{Target: TargetCamera, Index: i, Delta: delta}
}

// Apply applies a mutation event to the scene
func (s *Scene) Apply(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.Target {
	case TargetCamera:
		if e.Index < 0 || e.Index >= len(s.cameras) {
			return fmt.Errorf("camera %d: %w", e.Index, ErrIndexOutOfRange)
		}
		s.cameras[e.Index].Position.AddAssign(e.Delta)
	case TargetObject:
		if e.Index < 0 || e.Index >= len(s.objects) {
			return fmt.Errorf("object %d: %w", e.Index, ErrIndexOutOfRange)
		}
		s.objects[e.Index].Shape.Translate(e.Delta)
	default:
		return fmt.Errorf("%q: %w", e.Target, ErrUnknownTarget)
	}
	return nil
}
