package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var testProps = Props{
	Phong:         Phong{Ka: 0.3, Kd: 0.9, Ks: 1.0, Exponent: 200},
	Reflectance:   0.25,
	Transmittance: 0.5,
	Refraction:    2.3,
}

func TestMaterial_Properties(t *testing.T) {
	materials := []Material{
		NewSolid(core.NewColor(0.95, 0.63, 0.01), testProps),
		NewTextured("mramor6x6.png", testProps),
	}

	for _, m := range materials {
		if got := m.Properties(); got != testProps {
			t.Errorf("%T: expected %+v, got %+v", m, testProps, got)
		}
	}
}

func TestAlbedo(t *testing.T) {
	orange := core.NewColor(0.95, 0.63, 0.01)
	green := core.NewColor(0, 1, 0)

	unresolved := NewTextured("missing.png", testProps)
	resolved := unresolved.WithSource(NewSolidColor(green))

	tests := []struct {
		name           string
		material       Material
		sampleTextures bool
		expected       core.Color
	}{
		{"solid", NewSolid(orange, testProps), true, orange},
		{"solid ignores texture flag", NewSolid(orange, testProps), false, orange},
		{"unresolved texture is black", unresolved, true, core.Black},
		{"resolved texture sampled", resolved, true, green},
		{"texture sampling disabled", resolved, false, core.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Albedo(tt.material, core.UV{}, tt.sampleTextures); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWithSource_DoesNotMutateOriginal(t *testing.T) {
	original := NewTextured("wood.png", testProps)
	_ = original.WithSource(NewSolidColor(core.White))

	if original.Texture.Resolved() {
		t.Error("Expected original material to stay unresolved")
	}
	if TextureName(original) != "wood.png" {
		t.Errorf("Expected texture name wood.png, got %q", TextureName(original))
	}
	if TextureName(NewSolid(core.White, testProps)) != "" {
		t.Error("Expected empty texture name for solid material")
	}
}
