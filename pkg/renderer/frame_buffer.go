package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidSize is returned for rasters with a non-positive dimension
var ErrInvalidSize = errors.New("invalid raster size")

// FrameBuffer holds linear, unclamped RGB floats for every pixel.
// Pixel (i, j) lives at offset 3*(i + j*width); row 0 is the bottom of the image.
type FrameBuffer struct {
	width, height int
	pixels        []float32
}

// NewFrameBuffer allocates a zeroed buffer of width x height pixels
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]float32, width*height*3),
	}, nil
}

// Width returns the raster width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the raster height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// Pixels returns the backing float buffer, width*height*3 floats in RGB order
func (fb *FrameBuffer) Pixels() []float32 { return fb.pixels }

// Set stores the color of pixel (i, j)
func (fb *FrameBuffer) Set(i, j int, c core.Vec3) {
	offset := 3 * (i + j*fb.width)
	fb.pixels[offset] = float32(c.X)
	fb.pixels[offset+1] = float32(c.Y)
	fb.pixels[offset+2] = float32(c.Z)
}

// At returns the color of pixel (i, j)
func (fb *FrameBuffer) At(i, j int) core.Vec3 {
	offset := 3 * (i + j*fb.width)
	return core.NewVec3(
		float64(fb.pixels[offset]),
		float64(fb.pixels[offset+1]),
		float64(fb.pixels[offset+2]),
	)
}

// Image converts the buffer to 8-bit RGBA, clamping each channel to [0, 1].
// The image is flipped so that buffer row 0 becomes the bottom image row.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))

	for j := 0; j < fb.height; j++ {
		for i := 0; i < fb.width; i++ {
			c := fb.At(i, j).Clamp(0.0, 1.0)
			img.SetRGBA(i, fb.height-1-j, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}

	return img
}
