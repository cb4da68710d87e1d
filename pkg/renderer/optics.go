package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect mirrors an incident direction about a surface normal
func Reflect(incident, normal core.Vector) core.Vector {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends an incident direction through a surface using Snell's law.
// It returns false on total internal reflection.
func Refract(incident, normal core.Vector, etaI, etaT float64) (core.Vector, bool) {
	eta := etaI / etaT
	cosI := math.Max(-1, math.Min(1, -incident.Dot(normal)))
	sin2T := eta * eta * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Vector{}, false
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := incident.Add(normal.Multiply(cosI)).Multiply(eta).Subtract(normal.Multiply(cosT))
	return direction, true
}

// mirrorLobe reflects a direction toward the light about the normal
func mirrorLobe(toLight, normal core.Vector) core.Vector {
	return normal.Multiply(2 * normal.Dot(toLight)).Subtract(toLight)
}
