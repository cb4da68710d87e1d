package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersection contains information about a ray-surface intersection.
// It is produced by an intersect query and consumed by shading.
type Intersection struct {
	T        float64           // Parameter t along the ray
	Point    core.Point        // Point of intersection
	Normal   core.Vector       // Unit surface normal at intersection
	UV       core.UV           // Surface coordinates at intersection
	Material material.Material // Copy of the surface material
}

// Surface is implemented only by *Sphere and *Mesh
type Surface interface {
	// Intersect returns the nearest hit of the ray within its valid interval
	Intersect(ray core.Ray) (Intersection, bool)
	// SurfaceMaterial returns the material owned by the surface
	SurfaceMaterial() material.Material
	isSurface()
}
