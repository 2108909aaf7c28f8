package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type sceneEntry struct {
	info  SceneInfo
	build func() (*World, View)
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: titleCase("default"),
			Description: "Unit sphere with a half-size sphere inside it",
		},
		build: func() (*World, View) {
			return Default(), DefaultView()
		},
	},
	"three-spheres": {
		info: SceneInfo{
			ID:          "three-spheres",
			DisplayName: titleCase("three-spheres"),
			Description: "Three spheres on a floor in front of two walls",
		},
		build: func() (*World, View) {
			return NewThreeSpheresScene()
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup builds a fresh copy of the named scene
func Lookup(name string) (*World, View, error) {
	entry, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, View{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	w, view := entry.build()
	if err := w.Validate(); err != nil {
		return nil, View{}, fmt.Errorf("scene %s: %w", entry.info.ID, err)
	}
	return w, view, nil
}

// titleCase converts kebab-case or snake_case to Title Case
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
