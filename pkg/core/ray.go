package core

import "math"

// UV is a 2D surface parameterization
type UV struct {
	U, V float64
}

// Ray is a half-line with a unit direction, valid on the open interval (TMin, TMax)
type Ray struct {
	Origin    Point
	Direction Vector
	TMin      float64
	TMax      float64
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin Point, direction Vector, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), TMin: tMin, TMax: tMax}
}

// NewUnboundedRay creates a ray valid from tMin to infinity
func NewUnboundedRay(origin Point, direction Vector, tMin float64) Ray {
	return NewRay(origin, direction, tMin, math.Inf(1))
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Contains reports whether t lies strictly inside the ray's valid interval
func (r Ray) Contains(t float64) bool {
	return t > r.TMin && t < r.TMax
}
