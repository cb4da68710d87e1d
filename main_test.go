package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"mirrors scene", "mirrors", false},
		{"mesh scene", "mesh", false},

		// XML scenes (by name)
		{"example1 XML", "example1", false},
		{"glass pyramid XML", "glass-pyramid", false},

		// XML scenes (by path)
		{"direct XML path", "scenes/example1.xml", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid XML path", "scenes/nonexistent.xml", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, loaders.Options{})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if scene.Camera.Width <= 0 || scene.Camera.Height <= 0 {
				t.Errorf("Scene resolution should be positive, got %dx%d", scene.Camera.Width, scene.Camera.Height)
			}
			if len(scene.Surfaces) == 0 {
				t.Error("Scene should have surfaces")
			}
		})
	}
}

func TestCreateScene_SkipTextures(t *testing.T) {
	s, err := createScene("glass-pyramid", loaders.Options{SkipTextures: true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s.Surfaces) == 0 {
		t.Error("Expected surfaces")
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	tests := []struct {
		name       string
		outputFile string
		expected   string
	}{
		{"scene file name", "example1.png", filepath.Join("out", "example1.png")},
		{"timestamp fallback", "", filepath.Join("out", "render_20240305_140709.png")},
		{"strips directories", "../../etc/example1.png", filepath.Join("out", "example1.png")},
		{"forces png extension", "example1.bmp", filepath.Join("out", "example1.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath("out", tt.outputFile, now); got != tt.expected {
				t.Errorf("outputPath(%q) = %q, want %q", tt.outputFile, got, tt.expected)
			}
		})
	}
}
