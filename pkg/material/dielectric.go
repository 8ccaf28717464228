package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Mirror reflects v about the normal n, with both vectors pointing away from
// the surface: normalize(2(v.n)n - v).
func Mirror(v, n core.Vec3) core.Vec3 {
	return n.Multiply(2 * v.Dot(n)).Subtract(v).Normalize()
}

// Refraction describes light transmitted through a boundary
type Refraction struct {
	Direction      core.Vec3 // Unit transmitted direction
	CosIncidence   float64
	CosTransmitted float64
}

// Refract bends the view vector v (pointing away from the surface) through the
// boundary with normal n using Snell's law with ratio = n1/n2.
// Returns false on total internal reflection.
func Refract(v, n core.Vec3, ratio float64) (Refraction, bool) {
	cosIncidence := n.Dot(v)
	sinSqTransmitted := ratio * ratio * (1 - cosIncidence*cosIncidence)
	if sinSqTransmitted > 1 {
		return Refraction{CosIncidence: cosIncidence}, false
	}

	cosTransmitted := math.Sqrt(1 - sinSqTransmitted)
	direction := v.Multiply(-ratio).
		Add(n.Multiply(cosIncidence*ratio - cosTransmitted)).
		Normalize()

	return Refraction{
		Direction:      direction,
		CosIncidence:   cosIncidence,
		CosTransmitted: cosTransmitted,
	}, true
}

// Reflectance computes the exact unpolarized Fresnel reflectance: the mean of
// the perpendicular and parallel reflection coefficients.
func Reflectance(n1, n2, cosIncidence, cosTransmitted float64) float64 {
	rPerpendicular := (n1*cosIncidence - n2*cosTransmitted) / (n1*cosIncidence + n2*cosTransmitted)
	rParallel := (n2*cosIncidence - n1*cosTransmitted) / (n2*cosIncidence + n1*cosTransmitted)
	return (rPerpendicular*rPerpendicular + rParallel*rParallel) / 2
}
