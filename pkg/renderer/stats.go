package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels              int           // Total number of pixels rendered
	PrimaryRays              int           // Camera rays traced
	ShadowRays               int           // Shadow rays cast toward lights
	ReflectionRays           int           // Reflected rays spawned
	RefractionRays           int           // Refracted rays spawned
	TotalInternalReflections int           // Refractions dropped to black
	Duration                 time.Duration // Wall time of the render
}

// SecondaryRays returns the number of reflected and refracted rays
func (s RenderStats) SecondaryRays() int {
	return s.ReflectionRays + s.RefractionRays
}

// TotalRays returns every ray cast during the render
func (s RenderStats) TotalRays() int {
	return s.PrimaryRays + s.ShadowRays + s.SecondaryRays()
}
