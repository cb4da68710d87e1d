package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/fogleman/gg"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: built-in name, scene file name in scenes/, or path to an .xml file")
	outputDir := flag.String("output", "output", "Directory for rendered images")
	list := flag.Bool("list", false, "List available scenes")
	noTextures := flag.Bool("no-textures", false, "Skip texture loading and shade textured materials black")
	noSpot := flag.Bool("no-spot", false, "Shade spot lights as point lights without cone falloff")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	logger := renderer.NewDefaultLogger()

	if *list {
		if err := listScenes(logger); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := createScene(*sceneType, loaders.Options{SkipTextures: *noTextures, Logger: logger})
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.SampleTextures = !*noTextures
	config.SpotLights = !*noSpot

	cam := selectedScene.Camera
	fmt.Printf("Rendering %dx%d, %d primitives, %d lights, max bounces %d\n",
		cam.Width, cam.Height, selectedScene.PrimitiveCount(), selectedScene.Lights.Count(), cam.MaxBounces)

	raytracer := renderer.NewRaytracer(selectedScene, config, logger)
	raster, stats := raytracer.Render()

	fmt.Printf("Average luminance: %.3f, %d rays total\n", raster.AverageLuminance(), stats.TotalRays())

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := outputPath(*outputDir, selectedScene.OutputFile, time.Now())
	if err := gg.SavePNG(filename, raster.Image()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.ListBuiltInScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene output_file>, or <output>/render_<timestamp>.png")
}

func listScenes(logger core.Logger) error {
	groups, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, group := range groups {
		logger.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			if info.Description != "" {
				logger.Printf("  %-24s %s - %s\n", info.ID, info.DisplayName, info.Description)
			} else {
				logger.Printf("  %-24s %s\n", info.ID, info.DisplayName)
			}
		}
	}
	return nil
}

// createScene resolves a built-in scene name, a scene name in scenes/, or an XML file path
func createScene(sceneType string, opts loaders.Options) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	if s, ok := scene.NewBuiltInScene(sceneType); ok {
		if opts.Logger != nil {
			opts.Logger.Printf("Using built-in scene %s...\n", sceneType)
		}
		return s, nil
	}

	path := sceneType
	if !strings.HasSuffix(strings.ToLower(path), ".xml") {
		path = filepath.Join("scenes", sceneType+".xml")
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("unknown scene %q: not a built-in scene and %s does not exist", sceneType, path)
		}
	}

	if opts.Logger != nil {
		opts.Logger.Printf("Loading scene file %s...\n", path)
	}
	return loaders.LoadScene(path, opts)
}

// outputPath returns the image path for a scene's output file name
func outputPath(outputDir, outputFile string, now time.Time) string {
	name := filepath.Base(outputFile)
	if outputFile == "" || name == "." || name == string(filepath.Separator) {
		name = fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))
	} else if !strings.EqualFold(filepath.Ext(name), ".png") {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}
	return filepath.Join(outputDir, name)
}
