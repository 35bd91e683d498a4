package config

import (
	_ "embed"
)

//go:embed defaults/raycast.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration: the classic demo settings.
func Default() Config {
	return Config{
		Map: MapConfig{
			Default:  "classic",
			CellSize: 64,
		},
		Camera: CameraConfig{
			FOV:  60,
			Rays: 60,
		},
		Projection: ProjectionConfig{
			RefHeight: 0,
		},
		Movement: MovementConfig{
			Step: 5,
			Turn: 5,
		},
		Raycast: RaycastConfig{
			Epsilon:  1e-3,
			MaxSteps: 0,
			Workers:  1,
		},
		Display: DisplayConfig{
			Width:       1024,
			Height:      512,
			Title:       "raycast",
			FPS:         30,
			Minimap:     true,
			MinimapRays: true,
			CellAspect:  2,
		},
		Colors: map[string]string{},
		Source: "builtin",
	}
}
