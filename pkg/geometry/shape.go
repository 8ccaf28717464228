package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T      float64   // Signed distance along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit surface normal, always facing the incoming ray
	Inside bool      // Ray origin was inside the object, so Normal was flipped
}

// setFaceNormal orients the outward normal against the ray direction
func (h *HitRecord) setFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.Inside = ray.Direction.Dot(outwardNormal) > 0
	if h.Inside {
		h.Normal = outwardNormal.Negate()
	} else {
		h.Normal = outwardNormal
	}
}

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest non-negative root without any epsilon filtering;
// callers reject hits that are too close to the ray origin.
type Shape interface {
	Hit(ray core.Ray) (*HitRecord, bool)
	Translate(delta core.Vec3)
}
