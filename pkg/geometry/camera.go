package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Camera is a pinhole camera. FocalLength is the distance from the eye to the
// image plane, measured in the same units as a pixel on that plane.
type Camera struct {
	Position    core.Vec3
	Up          core.Vec3
	LookAt      core.Vec3
	FocalLength float64
}

// NewCamera creates a camera at position looking at lookAt
func NewCamera(position, up, lookAt core.Vec3, focalLength float64) Camera {
	return Camera{
		Position:    position,
		Up:          up,
		LookAt:      lookAt,
		FocalLength: focalLength,
	}
}

// DefaultCamera returns a camera at the origin looking down +Z
func DefaultCamera() Camera {
	return NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), 100)
}

// Forward returns the unit viewing direction
func (c Camera) Forward() core.Vec3 {
	return c.LookAt.Subtract(c.Position).Normalize()
}

// Viewport maps a width x height pixel grid onto the camera's image plane.
// Each pixel spans one world unit along the camera's right and up axes.
func (c Camera) Viewport(width, height int) Viewport {
	forward := c.Forward()
	up := c.Up.Normalize()
	right := forward.Cross(up).Negate().Normalize()

	bottomLeft := c.Position.
		Add(forward.Multiply(c.FocalLength)).
		Subtract(right.Multiply(0.5 * float64(width))).
		Subtract(up.Multiply(0.5 * float64(height)))

	return Viewport{
		Origin:     c.Position,
		BottomLeft: bottomLeft,
		Right:      right,
		Up:         up,
		Width:      width,
		Height:     height,
	}
}

// Viewport holds the camera basis for one raster size
type Viewport struct {
	Origin     core.Vec3
	BottomLeft core.Vec3
	Right      core.Vec3
	Up         core.Vec3
	Width      int
	Height     int
}

// GetRay returns the primary ray through pixel (i, j), where (0, 0) is the bottom-left pixel
func (v Viewport) GetRay(i, j int) core.Ray {
	direction := v.BottomLeft.
		Add(v.Right.Multiply(float64(i))).
		Add(v.Up.Multiply(float64(j))).
		Subtract(v.Origin).
		Normalize()

	return core.NewRay(v.Origin, direction)
}
