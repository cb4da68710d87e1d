package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	builtInGroup = "Built-in Scenes"
	xmlGroup     = "XML Scenes"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier, accepted by the CLI -scene flag
	Name        string // Scene name
	DisplayName string // Listing display name
	Description string // Optional description
	Group       string // Grouping category
	Type        string // "builtin" or "xml"
	FilePath    string // Path to XML file (xml type only)
	Variant     string // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string
	Scenes []SceneInfo
}

var builtInScenes = []struct {
	info    SceneInfo
	newFunc func() *Scene
}{
	{
		info: SceneInfo{
			ID: "default", Name: "Default Scene", DisplayName: "Default Scene",
			Description: "Single orange sphere with ambient, parallel and point lights",
			Group:       builtInGroup, Type: "builtin",
		},
		newFunc: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID: "mirrors", Name: "Mirrors", DisplayName: "Mirrors",
			Description: "Reflective and glass spheres over a mirror floor with a spot light",
			Group:       builtInGroup, Type: "builtin",
		},
		newFunc: NewMirrorsScene,
	},
	{
		info: SceneInfo{
			ID: "mesh", Name: "Mesh", DisplayName: "Mesh",
			Description: "Rotated triangle mesh cube next to a chrome sphere",
			Group:       builtInGroup, Type: "builtin",
		},
		newFunc: NewMeshScene,
	},
}

// NewBuiltInScene returns a freshly built scene for a built-in scene ID
func NewBuiltInScene(id string) (*Scene, bool) {
	for _, b := range builtInScenes {
		if b.info.ID == id {
			return b.newFunc(), true
		}
	}
	return nil, false
}

// ListBuiltInScenes returns the metadata of every built-in scene
func ListBuiltInScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	for i, b := range builtInScenes {
		scenes[i] = b.info
	}
	return scenes
}

// ListXMLScenes scans the scenes directory and returns discovered XML scenes
func ListXMLScenes() ([]SceneInfo, error) {
	// Try different possible paths for scenes directory
	possiblePaths := []string{"scenes", "../scenes"}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return ListXMLScenesIn(path)
		}
	}

	// No scenes directory found, return empty list
	return []SceneInfo{}, nil
}

// ListXMLScenesIn returns the XML scenes found directly inside dir
func ListXMLScenesIn(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseXMLMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseXMLMetadata extracts metadata from the header comments of an XML scene file.
// Header comments have the form <!-- Key: value --> and precede the scene element.
func ParseXMLMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          filePath,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       xmlGroup,
		Type:        "xml",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// If we can't read the file, return with fallback values
		return sceneInfo, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "<?xml") {
			continue
		}

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "<!--") || !strings.HasSuffix(line, "-->") {
			break
		}

		content := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "<!--"), "-->"))
		key, value, found := strings.Cut(content, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "Scene":
			sceneInfo.Name = value
		case "Variant":
			sceneInfo.Variant = value
		case "Description":
			sceneInfo.Description = value
		case "Group":
			sceneInfo.Group = value
		}
	}

	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns both built-in and XML scenes, grouped by category.
// Built-in scenes come first, then the other groups alphabetically.
func ListAllScenes() ([]SceneGroup, error) {
	xmlScenes, err := ListXMLScenes()
	if err != nil {
		return nil, fmt.Errorf("failed to list XML scenes: %w", err)
	}
	return groupScenes(append(ListBuiltInScenes(), xmlScenes...)), nil
}

func groupScenes(allScenes []SceneInfo) []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	var groups []SceneGroup
	if builtIn, exists := groupMap[builtInGroup]; exists {
		groups = append(groups, SceneGroup{Name: builtInGroup, Scenes: builtIn})
	}
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return groups
}

// titleCase converts a filename-style string to title case
// e.g., "glass-spheres" -> "Glass Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
