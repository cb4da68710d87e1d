package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-9

// discardLogger drops every message
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func matte(color core.Color, ka, kd float64) material.Solid {
	return material.NewSolid(color, material.Props{
		Phong:      material.Phong{Ka: ka, Kd: kd, Ks: 0, Exponent: 1},
		Refraction: 1,
	})
}

func testCamera(width, height int) scene.Camera {
	return scene.Camera{
		Position:      core.NewPoint(0, 0, 0),
		LookAt:        core.NewPoint(0, 0, -1),
		Up:            core.NewVector(0, 1, 0),
		HorizontalFOV: 45,
		Width:         width,
		Height:        height,
		MaxBounces:    4,
	}
}

// floorAt creates a large upward-facing square mesh at height y.
// The diagonal is offset so it never crosses the origin column.
func floorAt(y float64, mat material.Material) *geometry.Mesh {
	return geometry.NewIndexedMesh("floor",
		[]core.Point{
			core.NewPoint(-50, y, 60),
			core.NewPoint(50, y, 60),
			core.NewPoint(50, y, -40),
			core.NewPoint(-50, y, -40),
		},
		[]int{0, 1, 2, 0, 2, 3},
		mat, nil)
}

func newTestRaytracer(s *scene.Scene, config Config) *Raytracer {
	return NewRaytracer(s, config, discardLogger{})
}

func sceneWith(l lights.Lights, surfaces ...geometry.Surface) *scene.Scene {
	return &scene.Scene{
		BackgroundColor: core.NewColor(0.1, 0.2, 0.3),
		Camera:          testCamera(16, 16),
		Lights:          l,
		Surfaces:        surfaces,
	}
}

func colorsClose(a, b core.Color, tol float64) bool {
	return scalar.EqualWithinAbs(a.R, b.R, tol) &&
		scalar.EqualWithinAbs(a.G, b.G, tol) &&
		scalar.EqualWithinAbs(a.B, b.B, tol)
}

func vectorsClose(a, b core.Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}
