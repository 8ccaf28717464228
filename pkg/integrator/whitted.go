package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	// Epsilon rejects hits this close to the ray origin and offsets reflection rays outward
	Epsilon = 1e-5
	// RefractionEpsilon offsets refraction rays inward across the surface
	RefractionEpsilon = 1e-4
	// MaxBounces is the bounce depth at which glass stops spawning secondary rays
	MaxBounces = 2
)

// SkyColor is returned for rays that hit nothing
var SkyColor = core.NewVec3(0.7, 0.7, 1.0)

// WhittedIntegrator implements recursive Whitted ray tracing: Phong shading at
// every hit, plus Fresnel-weighted reflection and refraction for glass.
// Shadows are not traced; every light reaches every surface.
type WhittedIntegrator struct{}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{}
}

// RayColor computes the color for a primary ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, scene Scene, stats *TraceStats) core.Vec3 {
	if stats == nil {
		stats = &TraceStats{}
	}
	return wi.trace(ray, scene, 0, stats)
}

// ClosestHit returns the nearest hit at least Epsilon along the ray and the
// index of the object it belongs to, or (nil, -1) when nothing is hit.
// Of two hits at the same distance the earlier object wins.
func ClosestHit(ray core.Ray, s Scene) (*geometry.HitRecord, int) {
	var closest *geometry.HitRecord
	closestIndex := -1
	closestSoFar := math.Inf(1)

	for i, obj := range s.GetObjects() {
		hit, isHit := obj.Shape.Hit(ray)
		if !isHit || hit.T < Epsilon || hit.T >= closestSoFar {
			continue
		}
		closest = hit
		closestIndex = i
		closestSoFar = hit.T
	}

	return closest, closestIndex
}

// trace returns the color along ray at the given bounce depth
func (wi *WhittedIntegrator) trace(ray core.Ray, s Scene, depth int, stats *TraceStats) core.Vec3 {
	stats.Rays++
	stats.MaxDepth = max(stats.MaxDepth, depth+1)

	hit, index := ClosestHit(ray, s)
	if hit == nil {
		return SkyColor
	}
	obj := s.GetObjects()[index]

	view := ray.Origin.Subtract(hit.Point).Normalize()
	normal := hit.Normal.Normalize()

	color := wi.localColor(obj.Material, s, hit.Point, normal, view)

	if depth == MaxBounces || !obj.Material.Glass {
		return color
	}

	return color.Add(wi.glassColor(obj.Material, s, hit, view, depth, stats))
}

// localColor sums the Phong terms of every light, unclamped
func (wi *WhittedIntegrator) localColor(m material.Material, s Scene, point, normal, view core.Vec3) core.Vec3 {
	var color core.Vec3
	for _, light := range s.GetLights() {
		color.AddAssign(light.Shade(m, point, normal, view))
	}
	return color
}

// glassColor traces the reflected and refracted rays and blends them by Fresnel reflectance
func (wi *WhittedIntegrator) glassColor(m material.Material, s Scene, hit *geometry.HitRecord, view core.Vec3, depth int, stats *TraceStats) core.Vec3 {
	reflectionRay := core.NewRay(
		hit.Point.Add(hit.Normal.Multiply(Epsilon)),
		material.Mirror(view, hit.Normal),
	)
	reflectionColor := wi.trace(reflectionRay, s, depth+1, stats)

	n1, n2 := m.RefractionIndices(hit.Inside)
	refraction, ok := material.Refract(view, hit.Normal, n1/n2)
	if !ok {
		// Total internal reflection
		return reflectionColor.MultiplyVec(m.Specular)
	}

	refractionRay := core.NewRay(
		hit.Point.Subtract(hit.Normal.Multiply(RefractionEpsilon)),
		refraction.Direction,
	)
	refractionColor := wi.trace(refractionRay, s, depth+1, stats)

	reflectance := material.Reflectance(n1, n2, refraction.CosIncidence, refraction.CosTransmitted)
	transmittance := 1 - reflectance

	blended := reflectionColor.Multiply(reflectance).Add(refractionColor.Multiply(transmittance))
	return m.Diffuse.MultiplyVec(blended)
}
