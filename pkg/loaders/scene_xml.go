package loaders

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidSurface is returned for surfaces without exactly one well-formed material
var ErrInvalidSurface = errors.New("invalid surface")

// Options controls how referenced assets are resolved
type Options struct {
	MeshDir      string      // Directory for mesh files, defaults to the scene file's directory
	TextureDir   string      // Directory for textures, defaults to <scene dir>/textures
	SkipTextures bool        // Leave textures unresolved instead of loading them
	Logger       core.Logger // Receives load warnings, may be nil
}

// XML document structure

type xmlColor struct {
	R float64 `xml:"r,attr"`
	G float64 `xml:"g,attr"`
	B float64 `xml:"b,attr"`
}

type xmlXYZ struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	Z float64 `xml:"z,attr"`
}

type xmlCamera struct {
	Position      xmlXYZ `xml:"position"`
	LookAt        xmlXYZ `xml:"lookat"`
	Up            xmlXYZ `xml:"up"`
	HorizontalFOV struct {
		Angle float64 `xml:"angle,attr"`
	} `xml:"horizontal_fov"`
	Resolution struct {
		Horizontal int `xml:"horizontal,attr"`
		Vertical   int `xml:"vertical,attr"`
	} `xml:"resolution"`
	MaxBounces struct {
		N int `xml:"n,attr"`
	} `xml:"max_bounces"`
}

type xmlLights struct {
	Ambient []struct {
		Color xmlColor `xml:"color"`
	} `xml:"ambient_light"`
	Parallel []struct {
		Color     xmlColor `xml:"color"`
		Direction xmlXYZ   `xml:"direction"`
	} `xml:"parallel_light"`
	Point []struct {
		Color    xmlColor `xml:"color"`
		Position xmlXYZ   `xml:"position"`
	} `xml:"point_light"`
	Spot []struct {
		Color     xmlColor `xml:"color"`
		Position  xmlXYZ   `xml:"position"`
		Direction xmlXYZ   `xml:"direction"`
		Falloff   struct {
			Alpha1 float64 `xml:"alpha1,attr"`
			Alpha2 float64 `xml:"alpha2,attr"`
		} `xml:"falloff"`
	} `xml:"spot_light"`
}

type xmlMaterial struct {
	Color   *xmlColor `xml:"color"`
	Texture *struct {
		Name string `xml:"name,attr"`
	} `xml:"texture"`
	Phong struct {
		Ka       float64 `xml:"ka,attr"`
		Kd       float64 `xml:"kd,attr"`
		Ks       float64 `xml:"ks,attr"`
		Exponent float64 `xml:"exponent,attr"`
	} `xml:"phong"`
	Reflectance struct {
		R float64 `xml:"r,attr"`
	} `xml:"reflectance"`
	Transmittance struct {
		T float64 `xml:"t,attr"`
	} `xml:"transmittance"`
	Refraction struct {
		IOF float64 `xml:"iof,attr"`
	} `xml:"refraction"`
}

// xmlSurfaceMaterials collects every material element of one surface
type xmlSurfaceMaterials struct {
	Solid    []xmlMaterial `xml:"material_solid"`
	Textured []xmlMaterial `xml:"material_textured"`
}

type xmlSphere struct {
	Radius   float64 `xml:"radius,attr"`
	Position xmlXYZ  `xml:"position"`
	xmlSurfaceMaterials
}

type xmlMesh struct {
	Name string `xml:"name,attr"`
	xmlSurfaceMaterials
}

// xmlSurface holds exactly one of Sphere or Mesh
type xmlSurface struct {
	Sphere *xmlSphere
	Mesh   *xmlMesh
}

// xmlSurfaces keeps spheres and meshes in document order
type xmlSurfaces []xmlSurface

func (s *xmlSurfaces) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sphere":
				var sphere xmlSphere
				if err := d.DecodeElement(&sphere, &t); err != nil {
					return err
				}
				*s = append(*s, xmlSurface{Sphere: &sphere})
			case "mesh":
				var mesh xmlMesh
				if err := d.DecodeElement(&mesh, &t); err != nil {
					return err
				}
				*s = append(*s, xmlSurface{Mesh: &mesh})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type xmlScene struct {
	XMLName         xml.Name    `xml:"scene"`
	OutputFile      string      `xml:"output_file,attr"`
	BackgroundColor xmlColor    `xml:"background_color"`
	Camera          xmlCamera   `xml:"camera"`
	Lights          xmlLights   `xml:"lights"`
	Surfaces        xmlSurfaces `xml:"surfaces"`
}

// LoadScene loads and validates an XML scene file
func LoadScene(filename string, opts Options) (*scene.Scene, error) {
	if err := validateFilePath(filename, ".xml"); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneDir := filepath.Dir(filename)
	if opts.MeshDir == "" {
		opts.MeshDir = sceneDir
	}
	if opts.TextureDir == "" {
		opts.TextureDir = filepath.Join(sceneDir, "textures")
	}

	s, err := ParseScene(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseScene parses an XML scene, loads the meshes and textures it references
// and validates the result. Relative asset directories resolve against the
// working directory.
func ParseScene(reader io.Reader, opts Options) (*scene.Scene, error) {
	if opts.Logger == nil {
		opts.Logger = discardLogger{}
	}

	var doc xmlScene
	if err := xml.NewDecoder(reader).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene XML: %w", err)
	}

	b := &sceneBuilder{opts: opts, textures: make(map[string]*material.ImageTexture)}
	s := &scene.Scene{
		OutputFile:      doc.OutputFile,
		BackgroundColor: doc.BackgroundColor.color(),
		Camera:          doc.Camera.camera(),
		Lights:          doc.Lights.lights(),
	}

	for i, surface := range doc.Surfaces {
		built, err := b.surface(surface)
		if err != nil {
			return nil, fmt.Errorf("surface %d: %w", i, err)
		}
		if scene.EnergyOverBudget(built.SurfaceMaterial()) {
			p := built.SurfaceMaterial().Properties()
			opts.Logger.Printf("Warning: surface %d: reflectance + transmittance = %.3f exceeds 1, local shading is suppressed\n",
				i, p.Reflectance+p.Transmittance)
		}
		s.Surfaces = append(s.Surfaces, built)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

type sceneBuilder struct {
	opts     Options
	textures map[string]*material.ImageTexture // Loaded textures by name
}

func (b *sceneBuilder) surface(surface xmlSurface) (geometry.Surface, error) {
	switch {
	case surface.Sphere != nil:
		sp := surface.Sphere
		mat, err := b.material(sp.xmlSurfaceMaterials)
		if err != nil {
			return nil, fmt.Errorf("sphere: %w", err)
		}
		return geometry.NewSphere(sp.Position.point(), sp.Radius, mat), nil

	case surface.Mesh != nil:
		m := surface.Mesh
		mat, err := b.material(m.xmlSurfaceMaterials)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		path, err := resolveAsset(b.opts.MeshDir, m.Name, ".obj")
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		data, err := LoadOBJ(path)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		mesh := data.Mesh(m.Name, mat)
		if skipped := len(data.Faces) - mesh.TriangleCount(); skipped > 0 {
			b.opts.Logger.Printf("Warning: mesh %s: skipped %d degenerate faces\n", m.Name, skipped)
		}
		b.opts.Logger.Printf("Loaded mesh %s: %d vertices, %d triangles\n", m.Name, len(data.Vertices), mesh.TriangleCount())
		return mesh, nil
	}

	return nil, fmt.Errorf("%w: empty surface", ErrInvalidSurface)
}

func (b *sceneBuilder) material(m xmlSurfaceMaterials) (material.Material, error) {
	if count := len(m.Solid) + len(m.Textured); count != 1 {
		return nil, fmt.Errorf("%w: expected exactly one material, got %d", ErrInvalidSurface, count)
	}

	if len(m.Solid) == 1 {
		solid := m.Solid[0]
		if solid.Color == nil {
			return nil, fmt.Errorf("%w: material_solid requires a color", ErrInvalidSurface)
		}
		return material.NewSolid(solid.Color.color(), solid.props()), nil
	}

	textured := m.Textured[0]
	if textured.Texture == nil || textured.Texture.Name == "" {
		return nil, fmt.Errorf("%w: material_textured requires a texture name", ErrInvalidSurface)
	}

	mat := material.NewTextured(textured.Texture.Name, textured.props())
	if b.opts.SkipTextures {
		return mat, nil
	}

	texture, err := b.texture(textured.Texture.Name)
	if err != nil {
		return nil, err
	}
	return mat.WithSource(texture), nil
}

func (b *sceneBuilder) texture(name string) (*material.ImageTexture, error) {
	if texture, ok := b.textures[name]; ok {
		return texture, nil
	}

	path, err := resolveAsset(b.opts.TextureDir, name, ".png", ".jpg", ".jpeg")
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	texture, err := LoadTexture(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}

	b.opts.Logger.Printf("Loaded texture %s: %dx%d\n", name, texture.Width, texture.Height)
	b.textures[name] = texture
	return texture, nil
}

func (m xmlMaterial) props() material.Props {
	return material.Props{
		Phong: material.Phong{
			Ka:       m.Phong.Ka,
			Kd:       m.Phong.Kd,
			Ks:       m.Phong.Ks,
			Exponent: m.Phong.Exponent,
		},
		Reflectance:   m.Reflectance.R,
		Transmittance: m.Transmittance.T,
		Refraction:    m.Refraction.IOF,
	}
}

func (c xmlColor) color() core.Color {
	return core.NewColor(c.R, c.G, c.B)
}

func (v xmlXYZ) point() core.Point {
	return core.NewPoint(v.X, v.Y, v.Z)
}

func (v xmlXYZ) vector() core.Vector {
	return core.NewVector(v.X, v.Y, v.Z)
}

func (c xmlCamera) camera() scene.Camera {
	return scene.Camera{
		Position:      c.Position.point(),
		LookAt:        c.LookAt.point(),
		Up:            c.Up.vector(),
		HorizontalFOV: c.HorizontalFOV.Angle,
		Width:         c.Resolution.Horizontal,
		Height:        c.Resolution.Vertical,
		MaxBounces:    c.MaxBounces.N,
	}
}

func (l xmlLights) lights() lights.Lights {
	var result lights.Lights
	for _, a := range l.Ambient {
		result.Ambient = append(result.Ambient, lights.Ambient{Color: a.Color.color()})
	}
	for _, p := range l.Parallel {
		result.Parallel = append(result.Parallel, lights.Parallel{
			Color:     p.Color.color(),
			Direction: p.Direction.vector(),
		})
	}
	for _, p := range l.Point {
		result.Point = append(result.Point, lights.Point{
			Color:    p.Color.color(),
			Position: p.Position.point(),
		})
	}
	for _, s := range l.Spot {
		result.Spot = append(result.Spot, lights.Spot{
			Color:     s.Color.color(),
			Position:  s.Position.point(),
			Direction: s.Direction.vector(),
			Falloff:   lights.Falloff{Alpha1: s.Falloff.Alpha1, Alpha2: s.Falloff.Alpha2},
		})
	}
	return result
}

// discardLogger drops every message
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
