package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Scene is the read-only view of a scene an integrator needs
type Scene interface {
	GetObjects() []*scene.Object
	GetLights() []lights.PointLight
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray.
	// stats may be nil; otherwise it is updated and must not be shared between goroutines.
	RayColor(ray core.Ray, scene Scene, stats *TraceStats) core.Vec3
}

// TraceStats counts the work done while tracing
type TraceStats struct {
	Rays     int // Trace invocations, primary and secondary
	MaxDepth int // Deepest nesting of trace invocations seen
}

// Merge folds other into s
func (s *TraceStats) Merge(other TraceStats) {
	s.Rays += other.Rays
	s.MaxDepth = max(s.MaxDepth, other.MaxDepth)
}
