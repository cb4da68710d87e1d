// Package lights holds the light records of a scene.
package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLightIntensity is the fixed boost applied to point and spot lights
// before distance attenuation.
const PointLightIntensity = 10.0

// Ambient light adds a constant term scaled by each material's Ka
type Ambient struct {
	Color core.Color
}

// Parallel is a directional light with constant direction
type Parallel struct {
	Color     core.Color
	Direction core.Vector // Direction the light travels
}

func (p Parallel) Type() LightType { return LightTypeParallel }

func (p Parallel) Sample(point core.Point) LightSample {
	return LightSample{
		Direction: p.Direction.Normalize().Negate(),
		Distance:  math.Inf(1),
		Intensity: p.Color,
	}
}

// Point is an omnidirectional light at a position
type Point struct {
	Color    core.Color
	Position core.Point
}

func (p Point) Type() LightType { return LightTypePoint }

func (p Point) Sample(point core.Point) LightSample {
	toLight := p.Position.Subtract(point)
	distance := toLight.Length()
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  distance,
		Intensity: p.Color.Multiply(PointLightIntensity * Attenuation(distance)),
	}
}

// Attenuation is the distance falloff of point and spot lights
func Attenuation(distance float64) float64 {
	return 1.0 / (1.0 + 0.1*distance + 0.01*distance*distance)
}

// Lights groups the independently optional light collections of a scene
type Lights struct {
	Ambient  []Ambient
	Parallel []Parallel
	Point    []Point
	Spot     []Spot
}

// AmbientColor returns the sum of all ambient light colors
func (l Lights) AmbientColor() core.Color {
	total := core.Black
	for _, a := range l.Ambient {
		total = total.Add(a.Color)
	}
	return total
}

// Sources returns the directional lights in shading order: parallel, point, spot.
// When spotCone is false, spot lights are returned as plain point lights.
func (l Lights) Sources(spotCone bool) []Light {
	sources := make([]Light, 0, len(l.Parallel)+len(l.Point)+len(l.Spot))
	for _, p := range l.Parallel {
		sources = append(sources, p)
	}
	for _, p := range l.Point {
		sources = append(sources, p)
	}
	for _, s := range l.Spot {
		if spotCone {
			sources = append(sources, s)
		} else {
			sources = append(sources, s.AsPoint())
		}
	}
	return sources
}

// Count returns the total number of lights of every kind
func (l Lights) Count() int {
	return len(l.Ambient) + len(l.Parallel) + len(l.Point) + len(l.Spot)
}
