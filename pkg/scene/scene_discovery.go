package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Resolve
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

type builtinScene struct {
	info   SceneInfo
	create func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Two glass and two matte spheres under one overhead light",
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "spheregrid",
			Name:        "Sphere Grid",
			Description: "5x5 grid of colored Phong and glass spheres on a floor",
			Type:        "builtin",
		},
		create: NewSphereGridScene,
	},
}

// NewBuiltinScene creates the built-in scene with the given id
func NewBuiltinScene(id string) (*Scene, bool) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			s := b.create()
			s.SetInfo(b.info.Name, b.info.Description)
			return s, true
		}
	}
	return nil, false
}

// Resolve returns a built-in scene by id, or loads a JSON scene file.
// An empty name selects the default scene.
func Resolve(nameOrPath string) (*Scene, error) {
	if nameOrPath == "" {
		nameOrPath = "default"
	}
	if s, ok := NewBuiltinScene(nameOrPath); ok {
		return s, nil
	}
	return Load(nameOrPath)
}

// ListSceneFiles scans dir for JSON scene files. A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Skip unreadable files but keep listing the rest
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a JSON scene file.
// The file name is the fallback name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, err
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return sceneInfo, err
	}

	if meta.Name != "" {
		sceneInfo.Name = meta.Name
	}
	sceneInfo.Description = meta.Description

	return sceneInfo, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	all := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		all = append(all, b.info)
	}

	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}
	return append(all, files...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "two-cameras" -> "Two Cameras"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
