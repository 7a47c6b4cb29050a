package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-reference-raytracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Identifier accepted by Create
	Description string // One-line summary for help output
}

type sceneEntry struct {
	info    SceneInfo
	factory func(renderer.SamplingConfig) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info:    SceneInfo{Name: "default", Description: "Diffuse sphere on a large diffuse ground sphere"},
		factory: NewDefaultScene,
	},
	"materials": {
		info:    SceneInfo{Name: "materials", Description: "Diffuse sphere between a fuzzy and a rough metal sphere"},
		factory: NewMaterialsScene,
	},
	"mirrors": {
		info:    SceneInfo{Name: "mirrors", Description: "Two perfect mirror spheres reflecting each other"},
		factory: NewMirrorScene,
	},
	"spheregrid": {
		info:    SceneInfo{Name: "spheregrid", Description: "Grid of diffuse and metal spheres sweeping the hue wheel"},
		factory: NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes
}

// Create builds the named scene with the given sampling configuration
func Create(name string, samplingConfig renderer.SamplingConfig) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return entry.factory(samplingConfig), nil
}
