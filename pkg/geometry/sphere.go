package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere. The ray direction must be normalized.
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)
	halfB := ray.Direction.Dot(oc)

	// Unit direction, so the quadratic's leading coefficient is 1
	discriminant := halfB*halfB - (oc.LengthSquared() - s.Radius*s.Radius)

	var t float64
	switch {
	case discriminant < 0:
		return nil, false
	case discriminant == 0:
		// Tangent hit
		t = -halfB
	default:
		sqrtD := math.Sqrt(discriminant)
		far := -halfB + sqrtD
		near := -halfB - sqrtD
		if near < 0 && far < 0 {
			// Sphere is entirely behind the ray
			return nil, false
		}
		if near < 0 {
			// Origin is inside: the exit point is the only one ahead
			t = far
		} else {
			t = near
		}
	}

	hit := &HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hit.setFaceNormal(ray, hit.Point.Subtract(s.Center).Normalize())

	return hit, true
}

// Translate moves the sphere center by delta
func (s *Sphere) Translate(delta core.Vec3) {
	s.Center.AddAssign(delta)
}
