package renderer

import (
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Epsilon offsets secondary ray origins along the surface normal
const Epsilon = 1e-4

// Config contains the optional shading features
type Config struct {
	SampleTextures bool // Sample image textures instead of shading textured materials black
	SpotLights     bool // Attenuate spot lights by their falloff cone
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SampleTextures: true,
		SpotLights:     true,
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene   *scene.Scene
	camera  *Camera
	config  Config
	logger  core.Logger
	ambient core.Color     // Sum of ambient lights
	sources []lights.Light // Directional light sources in shading order
	stats   RenderStats
}

// NewRaytracer creates a new raytracer for a validated scene
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:   s,
		camera:  NewCamera(s.Camera),
		config:  config,
		logger:  logger,
		ambient: s.Lights.AmbientColor(),
		sources: s.Lights.Sources(config.SpotLights),
	}
}

// Camera returns the camera generating primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// ClosestIntersection returns the nearest surface hit along the ray.
// Ties keep the surface seen first.
func (rt *Raytracer) ClosestIntersection(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	hitAnything := false

	for _, surface := range rt.scene.Surfaces {
		hit, ok := intersectSurface(surface, ray)
		if ok && (!hitAnything || hit.T < closest.T) {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Occluded reports whether any surface lies within the ray's interval
func (rt *Raytracer) Occluded(ray core.Ray) bool {
	for _, surface := range rt.scene.Surfaces {
		if _, ok := intersectSurface(surface, ray); ok {
			return true
		}
	}
	return false
}

func intersectSurface(surface geometry.Surface, ray core.Ray) (geometry.Intersection, bool) {
	switch s := surface.(type) {
	case *geometry.Sphere:
		return s.Intersect(ray)
	case *geometry.Mesh:
		return s.Intersect(ray)
	default:
		panic("unknown surface type")
	}
}

// Shade returns the local Phong illumination at a hit point
func (rt *Raytracer) Shade(hit geometry.Intersection, ray core.Ray) core.Color {
	props := hit.Material.Properties()
	phong := props.Phong
	albedo := material.Albedo(hit.Material, hit.UV, rt.config.SampleTextures)

	result := albedo.MultiplyColor(rt.ambient).Multiply(phong.Ka)

	view := ray.Direction.Negate()
	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(Epsilon))

	for _, light := range rt.sources {
		sample := light.Sample(hit.Point)

		shadowRay := core.NewRay(shadowOrigin, sample.Direction, Epsilon, sample.Distance-Epsilon)
		rt.stats.ShadowRays++
		if rt.Occluded(shadowRay) {
			continue
		}

		diffuse := math.Max(0, hit.Normal.Dot(sample.Direction))
		result = result.Add(albedo.MultiplyColor(sample.Intensity).Multiply(diffuse * phong.Kd))

		specular := math.Pow(math.Max(0, view.Dot(mirrorLobe(sample.Direction, hit.Normal))), phong.Exponent)
		result = result.Add(sample.Intensity.Multiply(specular * phong.Ks))
	}

	return result
}

// BlendWeights splits a hit's energy between local shading, reflection and refraction.
// The local weight floors at zero when reflectance and transmittance exceed one.
func BlendWeights(reflectance, transmittance float64) (local, reflected, refracted float64) {
	return math.Max(0, 1-reflectance-transmittance), reflectance, transmittance
}

// TraceRay returns the color seen along a ray with the given bounce budget
func (rt *Raytracer) TraceRay(ray core.Ray, depth int) core.Color {
	if depth <= 0 {
		return rt.scene.BackgroundColor
	}

	hit, ok := rt.ClosestIntersection(ray)
	if !ok {
		return rt.scene.BackgroundColor
	}

	props := hit.Material.Properties()
	localWeight, reflectance, transmittance := BlendWeights(props.Reflectance, props.Transmittance)

	result := rt.Shade(hit, ray).Multiply(localWeight)

	if reflectance > 0 {
		reflected := core.NewUnboundedRay(
			hit.Point.Add(hit.Normal.Multiply(Epsilon)),
			Reflect(ray.Direction, hit.Normal),
			Epsilon)
		rt.stats.ReflectionRays++
		result = result.Add(rt.TraceRay(reflected, depth-1).Multiply(reflectance))
	}

	if transmittance > 0 {
		// Total internal reflection contributes black
		if direction, ok := Refract(ray.Direction, hit.Normal, 1.0, props.Refraction); ok {
			refracted := core.NewUnboundedRay(
				hit.Point.SubtractVector(hit.Normal.Multiply(Epsilon)),
				direction,
				Epsilon)
			rt.stats.RefractionRays++
			result = result.Add(rt.TraceRay(refracted, depth-1).Multiply(transmittance))
		} else {
			rt.stats.TotalInternalReflections++
		}
	}

	return result
}

// Render traces one primary ray per pixel in row-major order
func (rt *Raytracer) Render() (*Raster, RenderStats) {
	start := time.Now()
	rt.stats = RenderStats{}

	width, height := rt.scene.Camera.Width, rt.scene.Camera.Height
	raster := NewRaster(width, height)
	maxBounces := rt.scene.Camera.MaxBounces

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			ray := rt.camera.GenerateRay(px, py)
			rt.stats.PrimaryRays++

			r, g, b := rt.TraceRay(ray, maxBounces).RGB8()
			raster.Set(px, py, RGB{R: r, G: g, B: b})
		}
	}

	rt.stats.TotalPixels = width * height
	rt.stats.Duration = time.Since(start)

	rt.logger.Printf("Rendered %dx%d in %v: %d primary, %d shadow, %d reflected, %d refracted rays (%d total internal reflections)\n",
		width, height, rt.stats.Duration.Round(time.Millisecond),
		rt.stats.PrimaryRays, rt.stats.ShadowRays, rt.stats.ReflectionRays, rt.stats.RefractionRays,
		rt.stats.TotalInternalReflections)

	return raster, rt.stats
}
