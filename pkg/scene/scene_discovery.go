package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used on the command line
	Description string `json:"description"` // One line summary
}

type builtinScene struct {
	info    SceneInfo
	factory func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:    SceneInfo{ID: "default", Description: "Ground plane with gold, glass and diffuse spheres"},
		factory: NewDefaultScene,
	},
	"glass": {
		info:    SceneInfo{ID: "glass", Description: "Hollow glass shell around a diffuse core, depth of field"},
		factory: NewGlassScene,
	},
	"boxes": {
		info:    SceneInfo{ID: "boxes", Description: "Diffuse, metal and glass boxes on a finite floor"},
		factory: NewBoxesScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by id
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, builtin := range builtinScenes {
		scenes = append(scenes, builtin.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewBuiltinScene creates the built-in scene with the given id
func NewBuiltinScene(id string) (*Scene, error) {
	builtin, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownScene)
	}
	return builtin.factory(), nil
}
