package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMeshScene creates a rotated cube mesh next to a reflective sphere
func NewMeshScene() *Scene {
	blue := material.NewSolid(core.NewColor(0.2, 0.35, 0.85), material.Props{
		Phong:      material.Phong{Ka: 0.25, Kd: 0.8, Ks: 0.5, Exponent: 50},
		Refraction: 1,
	})
	chrome := material.NewSolid(core.NewColor(0.7, 0.7, 0.7), material.Props{
		Phong:       material.Phong{Ka: 0.1, Kd: 0.5, Ks: 1, Exponent: 200},
		Reflectance: 0.6,
		Refraction:  1,
	})

	center := core.NewPoint(-0.8, 0, -4)
	rotation := core.NewVector(math.Pi/6, math.Pi/4, 0)

	return &Scene{
		OutputFile:      "mesh.png",
		BackgroundColor: core.NewColor(0.1, 0.1, 0.1),
		Camera:          DefaultCamera(),
		Lights: lights.Lights{
			Ambient: []lights.Ambient{{Color: core.NewColor(0.4, 0.4, 0.4)}},
			Parallel: []lights.Parallel{
				{Color: core.NewColor(0.7, 0.7, 0.7), Direction: core.NewVector(1, -1, -1)},
			},
		},
		Surfaces: []geometry.Surface{
			NewCube("cube", center, 1.4, blue, &geometry.MeshOptions{Rotation: &rotation, Center: &center}),
			geometry.NewSphere(core.NewPoint(1.2, -0.2, -3.5), 0.7, chrome),
		},
	}
}

// NewCube creates an axis-aligned cube mesh of the given edge length
func NewCube(name string, center core.Point, size float64, mat material.Material, options *geometry.MeshOptions) *geometry.Mesh {
	h := size / 2
	vertices := []core.Point{
		center.Add(core.NewVector(-h, -h, -h)),
		center.Add(core.NewVector(h, -h, -h)),
		center.Add(core.NewVector(h, h, -h)),
		center.Add(core.NewVector(-h, h, -h)),
		center.Add(core.NewVector(-h, -h, h)),
		center.Add(core.NewVector(h, -h, h)),
		center.Add(core.NewVector(h, h, h)),
		center.Add(core.NewVector(-h, h, h)),
	}

	// Counter-clockwise winding seen from outside
	faces := []int{
		4, 5, 6, 4, 6, 7, // front (+z)
		1, 0, 3, 1, 3, 2, // back (-z)
		0, 4, 7, 0, 7, 3, // left (-x)
		5, 1, 2, 5, 2, 6, // right (+x)
		7, 6, 2, 7, 2, 3, // top (+y)
		0, 1, 5, 0, 5, 4, // bottom (-y)
	}

	return geometry.NewIndexedMesh(name, vertices, faces, mat, options)
}
