package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// PrimaryTMin is the near bound of every camera ray
const PrimaryTMin = 0.01

// Camera generates one primary ray per pixel.
// Directions are used directly in world space looking down -Z.
type Camera struct {
	origin core.Point
	width  int
	height int
	scaleX float64 // tan of the horizontal field of view
	scaleY float64 // tan of the vertical field of view
}

// NewCamera creates a camera from a scene camera configuration
func NewCamera(config scene.Camera) *Camera {
	fovX := config.HorizontalFOV * math.Pi / 180.0
	fovY := fovX * float64(config.Height) / float64(config.Width)

	return &Camera{
		origin: config.Position,
		width:  config.Width,
		height: config.Height,
		scaleX: math.Tan(fovX),
		scaleY: math.Tan(fovY),
	}
}

// GenerateRay returns the primary ray through the center of pixel (px, py).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GenerateRay(px, py int) core.Ray {
	xn := (float64(px) + 0.5) / float64(c.width)
	yn := (float64(py) + 0.5) / float64(c.height)

	xi := (2*xn - 1) * c.scaleX
	yi := (1 - 2*yn) * c.scaleY

	return core.NewUnboundedRay(c.origin, core.NewVector(xi, yi, -1), PrimaryTMin)
}
