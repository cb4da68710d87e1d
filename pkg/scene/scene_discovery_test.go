package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"glass-spheres", "Glass Spheres"},
		{"example_one", "Example One"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseXMLMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.xml",
			content: `<?xml version="1.0"?>
<!-- Scene: Example One -->
<!-- Variant: Orange -->
<!-- Description: A single sphere -->
<!-- Group: Samples -->
<scene output_file="example1.png">
</scene>`,
			expected: SceneInfo{
				Name:        "Example One",
				DisplayName: "Example One - Orange",
				Description: "A single sphere",
				Group:       "Samples",
				Type:        "xml",
				Variant:     "Orange",
			},
		},
		{
			name: "partial_metadata.xml",
			content: `<!-- Scene: Glass -->

<scene output_file="glass.png"/>`,
			expected: SceneInfo{
				Name:        "Glass",
				DisplayName: "Glass",
				Group:       "XML Scenes", // Default group
				Type:        "xml",
			},
		},
		{
			name:    "no_metadata.xml",
			content: `<scene output_file="x.png"><!-- Scene: Ignored --></scene>`,
			expected: SceneInfo{
				Name:        "No Metadata", // From filename
				DisplayName: "No Metadata",
				Group:       "XML Scenes",
				Type:        "xml",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result, err := ParseXMLMetadata(path)
			if err != nil {
				t.Fatalf("ParseXMLMetadata() error: %v", err)
			}

			if result.ID != path || result.FilePath != path {
				t.Errorf("ID/FilePath = %q/%q, want %q", result.ID, result.FilePath, path)
			}
			if result.Name != tc.expected.Name {
				t.Errorf("Name = %q, want %q", result.Name, tc.expected.Name)
			}
			if result.DisplayName != tc.expected.DisplayName {
				t.Errorf("DisplayName = %q, want %q", result.DisplayName, tc.expected.DisplayName)
			}
			if result.Description != tc.expected.Description {
				t.Errorf("Description = %q, want %q", result.Description, tc.expected.Description)
			}
			if result.Group != tc.expected.Group {
				t.Errorf("Group = %q, want %q", result.Group, tc.expected.Group)
			}
			if result.Type != tc.expected.Type {
				t.Errorf("Type = %q, want %q", result.Type, tc.expected.Type)
			}
			if result.Variant != tc.expected.Variant {
				t.Errorf("Variant = %q, want %q", result.Variant, tc.expected.Variant)
			}
		})
	}
}

func TestListXMLScenesIn(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.xml":     "<!-- Scene: Bravo -->\n<scene/>",
		"a.xml":     "<!-- Scene: Alpha -->\n<scene/>",
		"notes.txt": "not a scene",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListXMLScenesIn(dir)
	if err != nil {
		t.Fatalf("ListXMLScenesIn() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Bravo" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
}

func TestListXMLScenesIn_EmptyDirectory(t *testing.T) {
	scenes, err := ListXMLScenesIn(t.TempDir())
	if err != nil {
		t.Fatalf("ListXMLScenesIn() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	groups, err := ListAllScenes()
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(groups) == 0 {
		t.Fatal("ListAllScenes() returned no groups")
	}
	if groups[0].Name != "Built-in Scenes" {
		t.Errorf("Expected built-in group first, got %q", groups[0].Name)
	}

	expected := []string{"default", "mirrors", "mesh"}
	if len(groups[0].Scenes) != len(expected) {
		t.Fatalf("Built-in scenes count = %d, want %d", len(groups[0].Scenes), len(expected))
	}
	for i, id := range expected {
		if groups[0].Scenes[i].ID != id {
			t.Errorf("Built-in scene %d = %q, want %q", i, groups[0].Scenes[i].ID, id)
		}
	}
}

func TestGroupScenes_Ordering(t *testing.T) {
	groups := groupScenes([]SceneInfo{
		{ID: "z", Group: "Zeta"},
		{ID: "b", Group: "Built-in Scenes"},
		{ID: "a", Group: "Alpha"},
	})

	names := []string{"Built-in Scenes", "Alpha", "Zeta"}
	if len(groups) != len(names) {
		t.Fatalf("Expected %d groups, got %d", len(names), len(groups))
	}
	for i, name := range names {
		if groups[i].Name != name {
			t.Errorf("Group %d = %q, want %q", i, groups[i].Name, name)
		}
	}
}

func TestNewBuiltInScene(t *testing.T) {
	for _, info := range ListBuiltInScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, ok := NewBuiltInScene(info.ID)
			if !ok {
				t.Fatalf("Expected built-in scene %q", info.ID)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene %q failed validation: %v", info.ID, err)
			}
			if len(s.Surfaces) == 0 {
				t.Error("Expected surfaces")
			}
		})
	}

	if _, ok := NewBuiltInScene("missing"); ok {
		t.Error("Expected unknown scene ID to be rejected")
	}
}
