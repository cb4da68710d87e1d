package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateTolerance is the distance below which a face collapses onto its longest side
const degenerateTolerance = 1e-12

// OBJVertex references the attributes of one face corner.
// Indices are zero-based; absent attributes are -1.
type OBJVertex struct {
	V  int
	VT int
	VN int
}

// OBJFace is a triangulated face
type OBJFace [3]OBJVertex

// OBJData contains the raw data loaded from a Wavefront OBJ file
type OBJData struct {
	Vertices  []core.Point  // Vertex positions (v)
	TexCoords []core.UV     // Texture coordinates (vt)
	Normals   []core.Vector // Vertex normals (vn)
	Faces     []OBJFace     // Triangles after fan triangulation
}

// LoadOBJ loads an OBJ file and returns the raw vertex and face data
func LoadOBJ(filename string) (*OBJData, error) {
	if err := validateFilePath(filename, ".obj"); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ parses v, vt, vn and f statements. Other statements are ignored.
func ParseOBJ(reader io.Reader) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(reader)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "v":
			var values []float64
			if values, err = parseFloats(fields[1:], 3); err == nil {
				data.Vertices = append(data.Vertices, core.NewPoint(values[0], values[1], values[2]))
			}
		case "vt":
			var values []float64
			if values, err = parseFloats(fields[1:], 2); err == nil {
				data.TexCoords = append(data.TexCoords, core.UV{U: values[0], V: values[1]})
			}
		case "vn":
			var values []float64
			if values, err = parseFloats(fields[1:], 3); err == nil {
				data.Normals = append(data.Normals, core.NewVector(values[0], values[1], values[2]))
			}
		case "f":
			err = data.parseFace(fields[1:])
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return data, nil
}

// parseFloats parses at least n floats, ignoring optional trailing components
func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", fields[i], err)
		}
		values[i] = v
	}
	return values, nil
}

// parseFace parses a polygon and fan-triangulates it around its first corner
func (d *OBJData) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	corners := make([]OBJVertex, len(fields))
	for i, field := range fields {
		corner, err := d.parseCorner(field)
		if err != nil {
			return err
		}
		corners[i] = corner
	}

	for i := 1; i+1 < len(corners); i++ {
		d.Faces = append(d.Faces, OBJFace{corners[0], corners[i], corners[i+1]})
	}
	return nil
}

// parseCorner parses v, v/vt, v//vn or v/vt/vn
func (d *OBJData) parseCorner(field string) (OBJVertex, error) {
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return OBJVertex{}, fmt.Errorf("invalid face vertex %q", field)
	}

	corner := OBJVertex{V: -1, VT: -1, VN: -1}
	var err error
	if corner.V, err = resolveIndex(parts[0], len(d.Vertices)); err != nil {
		return OBJVertex{}, fmt.Errorf("vertex index in %q: %w", field, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if corner.VT, err = resolveIndex(parts[1], len(d.TexCoords)); err != nil {
			return OBJVertex{}, fmt.Errorf("texture index in %q: %w", field, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if corner.VN, err = resolveIndex(parts[2], len(d.Normals)); err != nil {
			return OBJVertex{}, fmt.Errorf("normal index in %q: %w", field, err)
		}
	}
	return corner, nil
}

// resolveIndex converts a one-based or negative relative index to zero-based
func resolveIndex(s string, count int) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}

	switch {
	case index > 0 && index <= count:
		return index - 1, nil
	case index < 0 && -index <= count:
		return count + index, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", index, count)
	}
}

// Mesh builds a renderable mesh. Degenerate faces are skipped.
// Triangles use the averaged vertex normal when every corner has one,
// otherwise the face normal.
func (d *OBJData) Mesh(name string, mat material.Material) *geometry.Mesh {
	triangles := make([]geometry.Triangle, 0, len(d.Faces))

	for _, face := range d.Faces {
		p0, p1, p2 := d.Vertices[face[0].V], d.Vertices[face[1].V], d.Vertices[face[2].V]
		tri := r3.Triangle{toR3(p0), toR3(p1), toR3(p2)}
		faceNormal := tri.Normal()
		if r3.Norm(faceNormal) == 0 || tri.IsDegenerate(degenerateTolerance) {
			continue
		}

		normal, ok := d.averageNormal(face)
		if !ok {
			n := r3.Unit(faceNormal)
			normal = core.NewVector(n.X, n.Y, n.Z)
		}
		triangles = append(triangles, geometry.NewTriangleWithNormal(p0, p1, p2, normal))
	}

	return geometry.NewMesh(name, triangles, mat)
}

func (d *OBJData) averageNormal(face OBJFace) (core.Vector, bool) {
	sum := core.Vector{}
	for _, corner := range face {
		if corner.VN < 0 {
			return core.Vector{}, false
		}
		sum = sum.Add(d.Normals[corner.VN].Normalize())
	}
	if sum.LengthSquared() == 0 {
		return core.Vector{}, false
	}
	return sum.Normalize(), true
}

func toR3(p core.Point) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}
