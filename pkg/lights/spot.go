package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Falloff describes a spot light cone. Angles are in degrees from the spot axis.
type Falloff struct {
	Alpha1 float64 // Full intensity inside this angle
	Alpha2 float64 // No light outside this angle
}

// Spot is a point light restricted to a cone
type Spot struct {
	Color     core.Color
	Position  core.Point
	Direction core.Vector // Cone axis
	Falloff   Falloff
}

func (s Spot) Type() LightType { return LightTypeSpot }

// AsPoint returns the spot light without its cone
func (s Spot) AsPoint() Point {
	return Point{Color: s.Color, Position: s.Position}
}

func (s Spot) Sample(point core.Point) LightSample {
	sample := s.AsPoint().Sample(point)
	sample.Intensity = sample.Intensity.Multiply(s.ConeAttenuation(point))
	return sample
}

// ConeAttenuation returns the cone falloff factor in [0,1] for a point
func (s Spot) ConeAttenuation(point core.Point) float64 {
	lightToPoint := point.Subtract(s.Position).Normalize()
	cosAngle := s.Direction.Normalize().Dot(lightToPoint)
	return s.Falloff.attenuate(cosAngle)
}

func (f Falloff) attenuate(cosAngle float64) float64 {
	cosFalloffStart := math.Cos(f.Alpha1 * math.Pi / 180.0)

	// Hard-edged cone
	if f.Alpha2 <= f.Alpha1 {
		if cosAngle >= cosFalloffStart {
			return 1.0
		}
		return 0.0
	}

	cosTotalWidth := math.Cos(f.Alpha2 * math.Pi / 180.0)

	// Outside the total cone width
	if cosAngle < cosTotalWidth {
		return 0.0
	}

	// Inside the inner cone (full intensity)
	if cosAngle >= cosFalloffStart {
		return 1.0
	}

	// Smooth quartic transition between the cones
	delta := (cosAngle - cosTotalWidth) / (cosFalloffStart - cosTotalWidth)
	return delta * delta * delta * delta
}
