package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeAmbient  LightType = "ambient"
	LightTypeParallel LightType = "parallel"
	LightTypePoint    LightType = "point"
	LightTypeSpot     LightType = "spot"
)

// Light is a light source that illuminates a shading point from one direction
type Light interface {
	Type() LightType

	// Sample evaluates the light toward a specific shading point.
	// The returned direction points FROM the shading point TO the light.
	Sample(point core.Point) LightSample
}

// LightSample contains the incident light at a shading point
type LightSample struct {
	Direction core.Vector // Unit direction from shading point to light
	Distance  float64     // Distance to light, +Inf for parallel lights
	Intensity core.Color  // Light color after attenuation
}
