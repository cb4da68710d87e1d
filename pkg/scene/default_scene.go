package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// DefaultCamera is the camera shared by the built-in scenes
func DefaultCamera() Camera {
	return Camera{
		Position:      core.NewPoint(0, 0, 1),
		LookAt:        core.NewPoint(0, 0, -2.5),
		Up:            core.NewVector(0, 1, 0),
		HorizontalFOV: 45,
		Width:         512,
		Height:        512,
		MaxBounces:    8,
	}
}

// NewDefaultScene creates a single shaded sphere lit by ambient, parallel and point lights
func NewDefaultScene() *Scene {
	orange := material.NewSolid(core.NewColor(0.95, 0.63, 0.01), material.Props{
		Phong:      material.Phong{Ka: 0.3, Kd: 0.9, Ks: 1.0, Exponent: 200},
		Refraction: 2.3,
	})

	return &Scene{
		OutputFile:      "default.png",
		BackgroundColor: core.Black,
		Camera:          DefaultCamera(),
		Lights: lights.Lights{
			Ambient: []lights.Ambient{{Color: core.White}},
			Parallel: []lights.Parallel{
				{Color: core.NewColor(0.5, 0.5, 0.5), Direction: core.NewVector(0, -1, -1)},
			},
			Point: []lights.Point{
				{Color: core.NewColor(0.4, 0.4, 0.4), Position: core.NewPoint(2, 2, 0)},
			},
		},
		Surfaces: []geometry.Surface{
			geometry.NewSphere(core.NewPoint(0, 0, -3), 1, orange),
		},
	}
}
