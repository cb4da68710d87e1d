// Package material defines the surface materials of the scene graph.
//
// A Material is a closed sum type: it is either Solid or Textured. Both
// variants carry the same Phong coefficients and the reflectance,
// transmittance and refraction index used by the recursive tracer.
package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong holds the coefficients of the Phong local illumination model
type Phong struct {
	Ka       float64 // Ambient coefficient
	Kd       float64 // Diffuse coefficient
	Ks       float64 // Specular coefficient
	Exponent float64 // Shininess exponent
}

// Props are the optical properties shared by every material variant
type Props struct {
	Phong         Phong
	Reflectance   float64 // Fraction of energy sent down the reflected ray
	Transmittance float64 // Fraction of energy sent down the refracted ray
	Refraction    float64 // Index of refraction
}

// Material is implemented only by Solid and Textured
type Material interface {
	// Properties returns the optical properties of the material
	Properties() Props
	isMaterial()
}

// Solid is a material with a single flat color
type Solid struct {
	Color core.Color
	Props
}

// NewSolid creates a solid material
func NewSolid(color core.Color, props Props) Solid {
	return Solid{Color: color, Props: props}
}

func (s Solid) Properties() Props { return s.Props }
func (Solid) isMaterial()         {}

// Texture names an image and, once loaded, the source that samples it
type Texture struct {
	Name   string
	Source ColorSource // nil while unresolved
}

// Resolved reports whether the texture has backing pixel data
func (t Texture) Resolved() bool {
	return t.Source != nil
}

// Textured is a material whose color comes from a named texture
type Textured struct {
	Texture Texture
	Props
}

// NewTextured creates a textured material with an unresolved texture
func NewTextured(textureName string, props Props) Textured {
	return Textured{Texture: Texture{Name: textureName}, Props: props}
}

func (t Textured) Properties() Props { return t.Props }
func (Textured) isMaterial()         {}

// WithSource returns a copy of the material with its texture resolved
func (t Textured) WithSource(source ColorSource) Textured {
	t.Texture.Source = source
	return t
}

// Albedo returns the surface color of a material at the given UV.
// Textured materials sample their texture when sampleTextures is set and
// the texture is resolved; otherwise they are black.
func Albedo(m Material, uv core.UV, sampleTextures bool) core.Color {
	switch mat := m.(type) {
	case Solid:
		return mat.Color
	case Textured:
		if sampleTextures && mat.Texture.Resolved() {
			return mat.Texture.Source.Evaluate(uv)
		}
		return core.Black
	default:
		return core.Black
	}
}

// TextureName returns the texture name of a textured material, or "" for solid ones
func TextureName(m Material) string {
	if t, ok := m.(Textured); ok {
		return t.Texture.Name
	}
	return ""
}
