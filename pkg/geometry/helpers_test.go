package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-9

var testMaterial = material.NewSolid(core.NewColor(0.5, 0.5, 0.5), material.Props{
	Phong:      material.Phong{Ka: 0.3, Kd: 0.9, Ks: 1.0, Exponent: 200},
	Refraction: 1.5,
})

func forwardRay(origin core.Point, direction core.Vector) core.Ray {
	return core.NewRay(origin, direction, 0.001, math.Inf(1))
}

func pointsClose(a, b core.Point, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func vectorsClose(a, b core.Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}
