package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Mesh is an ordered collection of triangles sharing one material.
// Intersection is a linear scan over every triangle.
type Mesh struct {
	Name      string
	Material  material.Material
	Triangles []Triangle
}

// MeshOptions contains optional parameters for mesh creation
type MeshOptions struct {
	Normals  []core.Vector // Optional custom normals (one per triangle)
	Rotation *core.Vector  // Optional rotation to apply to vertices (radians)
	Center   *core.Point   // Optional center point for rotation
}

// NewMesh creates a mesh from already built triangles
func NewMesh(name string, triangles []Triangle, mat material.Material) *Mesh {
	return &Mesh{
		Name:      name,
		Material:  mat,
		Triangles: triangles,
	}
}

// NewIndexedMesh creates a new mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// options: optional parameters (can be nil for basic mesh)
func NewIndexedMesh(name string, vertices []core.Point, faces []int, mat material.Material, options *MeshOptions) *Mesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3

	if options != nil && options.Normals != nil && len(options.Normals) != numTriangles {
		panic("Number of normals must match number of triangles")
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Point, len(vertices))
		for i, vertex := range vertices {
			// Translate to center, rotate, then translate back
			offset := vertex.Vector()
			if options.Center != nil {
				offset = vertex.Subtract(*options.Center)
			}
			offset = offset.Rotate(*options.Rotation)
			if options.Center != nil {
				workingVertices[i] = options.Center.Add(offset)
			} else {
				workingVertices[i] = core.Point{}.Add(offset)
			}
		}
	}

	triangles := make([]Triangle, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		if i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			panic("Face index out of bounds")
		}

		v0, v1, v2 := workingVertices[i0], workingVertices[i1], workingVertices[i2]
		if options != nil && options.Normals != nil {
			triangles[i] = NewTriangleWithNormal(v0, v1, v2, options.Normals[i])
		} else {
			triangles[i] = NewTriangle(v0, v1, v2)
		}
	}

	return NewMesh(name, triangles, mat)
}

func (m *Mesh) isSurface() {}

// SurfaceMaterial returns the material shared by every triangle
func (m *Mesh) SurfaceMaterial() material.Material {
	return m.Material
}

// Intersect returns the nearest triangle hit. Ties keep the first triangle seen.
func (m *Mesh) Intersect(ray core.Ray) (Intersection, bool) {
	var closest Intersection
	hitAnything := false

	for _, triangle := range m.Triangles {
		if hit, ok := triangle.Intersect(ray, m.Material); ok {
			if !hitAnything || hit.T < closest.T {
				closest = hit
				hitAnything = true
			}
		}
	}

	return closest, hitAnything
}

// TriangleCount returns the number of triangles in this mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}
