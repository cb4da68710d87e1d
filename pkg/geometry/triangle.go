package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon is the determinant magnitude below which a ray is treated as parallel
const parallelEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices.
// Its normal is fixed at construction and used for flat shading.
type Triangle struct {
	V0, V1, V2 core.Point  // The three vertices
	Normal     core.Vector // Unit normal
}

// NewTriangle creates a triangle whose normal is the face normal (v1-v0)×(v2-v0)
func NewTriangle(v0, v1, v2 core.Point) Triangle {
	return Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		Normal: FaceNormal(v0, v1, v2),
	}
}

// NewTriangleWithNormal creates a triangle with a custom normal
func NewTriangleWithNormal(v0, v1, v2 core.Point, normal core.Vector) Triangle {
	return Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		Normal: normal.Normalize(),
	}
}

// FaceNormal returns the unit normal of the plane through three points
func FaceNormal(v0, v1, v2 core.Point) core.Vector {
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// The intersection carries the given material.
func (t Triangle) Intersect(ray core.Ray, mat material.Material) (Intersection, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in (or parallel to) the plane of the triangle
	if a > -parallelEpsilon && a < parallelEpsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	tParam := f * edge2.Dot(q)
	if !ray.Contains(tParam) {
		return Intersection{}, false
	}

	return Intersection{
		T:        tParam,
		Point:    ray.At(tParam),
		Normal:   t.Normal,
		UV:       core.UV{U: u, V: v},
		Material: mat,
	}, true
}
