package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorsScene creates reflective and refractive spheres over a mirror floor
func NewMirrorsScene() *Scene {
	phong := material.Phong{Ka: 0.2, Kd: 0.8, Ks: 0.6, Exponent: 80}

	mirror := material.NewSolid(core.NewColor(0.9, 0.9, 0.9), material.Props{
		Phong: phong, Reflectance: 0.8, Refraction: 1,
	})
	glass := material.NewSolid(core.NewColor(0.8, 0.9, 1.0), material.Props{
		Phong: phong, Reflectance: 0.1, Transmittance: 0.8, Refraction: 1.5,
	})
	red := material.NewSolid(core.NewColor(0.8, 0.15, 0.1), material.Props{
		Phong: phong, Reflectance: 0.2, Refraction: 1,
	})
	floor := material.NewSolid(core.NewColor(0.3, 0.3, 0.35), material.Props{
		Phong:       material.Phong{Ka: 0.3, Kd: 0.7, Ks: 0.2, Exponent: 20},
		Reflectance: 0.4,
		Refraction:  1,
	})

	// Large quad below the spheres, two triangles
	ground := geometry.NewIndexedMesh("ground",
		[]core.Point{
			core.NewPoint(-20, -1, 5),
			core.NewPoint(20, -1, 5),
			core.NewPoint(20, -1, -40),
			core.NewPoint(-20, -1, -40),
		},
		[]int{0, 1, 2, 0, 2, 3},
		floor, nil)

	return &Scene{
		OutputFile:      "mirrors.png",
		BackgroundColor: core.NewColor(0.05, 0.05, 0.1),
		Camera:          DefaultCamera(),
		Lights: lights.Lights{
			Ambient: []lights.Ambient{{Color: core.NewColor(0.3, 0.3, 0.3)}},
			Parallel: []lights.Parallel{
				{Color: core.NewColor(0.4, 0.4, 0.4), Direction: core.NewVector(-1, -1, -1)},
			},
			Point: []lights.Point{
				{Color: core.NewColor(0.6, 0.6, 0.6), Position: core.NewPoint(-3, 3, -1)},
			},
			Spot: []lights.Spot{
				{
					Color:     core.NewColor(0.8, 0.7, 0.5),
					Position:  core.NewPoint(0, 4, -4),
					Direction: core.NewVector(0, -1, 0),
					Falloff:   lights.Falloff{Alpha1: 15, Alpha2: 35},
				},
			},
		},
		Surfaces: []geometry.Surface{
			geometry.NewSphere(core.NewPoint(-1.3, 0, -4), 0.9, mirror),
			geometry.NewSphere(core.NewPoint(0.2, -0.4, -2.8), 0.6, glass),
			geometry.NewSphere(core.NewPoint(1.5, 0.1, -4.5), 1, red),
			ground,
		},
	}
}
