package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrInvalidScene is wrapped by every error returned from Validate
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering.
// It is read-only for the duration of a render.
type Scene struct {
	OutputFile      string // Output image file name, may be empty
	BackgroundColor core.Color
	Camera          Camera
	Lights          lights.Lights
	Surfaces        []geometry.Surface
}

// Camera contains the camera configuration of a scene
type Camera struct {
	Position      core.Point
	LookAt        core.Point  // Carried for completeness, not applied to primary rays
	Up            core.Vector // Carried for completeness, not applied to primary rays
	HorizontalFOV float64     // Degrees
	Width         int         // Image width in pixels
	Height        int         // Image height in pixels
	MaxBounces    int         // Recursion budget for reflected and refracted rays
}

// Validate checks the structural invariants the renderer relies on
func (s *Scene) Validate() error {
	c := s.Camera
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: resolution must be positive, got %dx%d", ErrInvalidScene, c.Width, c.Height)
	}
	if c.MaxBounces < 0 {
		return fmt.Errorf("%w: max bounces must not be negative, got %d", ErrInvalidScene, c.MaxBounces)
	}
	verticalFOV := c.HorizontalFOV * float64(c.Height) / float64(c.Width)
	if c.HorizontalFOV <= 0 || c.HorizontalFOV >= 90 || verticalFOV >= 90 {
		return fmt.Errorf("%w: field of view must be in (0, 90) degrees on both axes, got %g", ErrInvalidScene, c.HorizontalFOV)
	}
	if anyNaN(c.Position.X, c.Position.Y, c.Position.Z) {
		return fmt.Errorf("%w: camera position is not a number", ErrInvalidScene)
	}

	for i, surface := range s.Surfaces {
		if err := validateSurface(surface); err != nil {
			return fmt.Errorf("surface %d: %w", i, err)
		}
	}
	return nil
}

func validateSurface(surface geometry.Surface) error {
	switch s := surface.(type) {
	case *geometry.Sphere:
		if !(s.Radius > 0) {
			return fmt.Errorf("%w: sphere radius must be positive, got %g", ErrInvalidScene, s.Radius)
		}
		return validateMaterial(s.Material)
	case *geometry.Mesh:
		if len(s.Triangles) == 0 {
			return fmt.Errorf("%w: mesh %q has no triangles", ErrInvalidScene, s.Name)
		}
		return validateMaterial(s.Material)
	default:
		return fmt.Errorf("%w: unknown surface type %T", ErrInvalidScene, surface)
	}
}

func validateMaterial(m material.Material) error {
	if m == nil {
		return fmt.Errorf("%w: surface has no material", ErrInvalidScene)
	}
	p := m.Properties()
	if p.Reflectance < 0 || p.Reflectance > 1 {
		return fmt.Errorf("%w: reflectance must be in [0, 1], got %g", ErrInvalidScene, p.Reflectance)
	}
	if p.Transmittance < 0 || p.Transmittance > 1 {
		return fmt.Errorf("%w: transmittance must be in [0, 1], got %g", ErrInvalidScene, p.Transmittance)
	}
	if p.Refraction < 0 || (p.Transmittance > 0 && p.Refraction == 0) {
		return fmt.Errorf("%w: index of refraction must be positive, got %g", ErrInvalidScene, p.Refraction)
	}
	return nil
}

func anyNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// EnergyOverBudget reports whether a material sends more energy down its
// secondary rays than it receives, which leaves no local contribution.
func EnergyOverBudget(m material.Material) bool {
	p := m.Properties()
	return p.Reflectance+p.Transmittance > 1
}

// PrimitiveCount returns the total number of spheres and triangles in the scene
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, surface := range s.Surfaces {
		switch sf := surface.(type) {
		case *geometry.Sphere:
			count++
		case *geometry.Mesh:
			count += sf.TriangleCount()
		}
	}
	return count
}
