package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Position core.Point
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(position core.Point, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Position: position,
		Radius:   radius,
		Material: mat,
	}
}

func (s *Sphere) isSurface() {}

// SurfaceMaterial returns the sphere's material
func (s *Sphere) SurfaceMaterial() material.Material {
	return s.Material
}

// Intersect tests if a ray intersects with the sphere.
// Hits from inside the sphere report the exit point; the normal always points outward.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Position)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if !ray.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !ray.Contains(root) {
			return Intersection{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Position).Normalize()

	return Intersection{
		T:        root,
		Point:    point,
		Normal:   normal,
		UV:       sphereUV(normal),
		Material: s.Material,
	}, true
}

// sphereUV maps an outward unit normal to spherical texture coordinates.
// U wraps around the Y axis starting at -X, V runs from the bottom pole to the top.
func sphereUV(n core.Vector) core.UV {
	theta := math.Acos(max(-1, min(1, -n.Y)))
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return core.UV{U: phi / (2 * math.Pi), V: theta / math.Pi}
}
