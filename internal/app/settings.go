package app

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/luxo/internal/config"
	"github.com/Faultbox/luxo/internal/engine/camera"
	"github.com/Faultbox/luxo/internal/engine/geometry"
	"github.com/Faultbox/luxo/internal/engine/renderer"
	"github.com/Faultbox/luxo/internal/engine/scene"
)

// keyActions maps arrow keys and WASD to camera movement.
var keyActions = map[sdl.Scancode]camera.Action{
	sdl.SCANCODE_LEFT:  camera.ActionOrbitLeft,
	sdl.SCANCODE_A:     camera.ActionOrbitLeft,
	sdl.SCANCODE_RIGHT: camera.ActionOrbitRight,
	sdl.SCANCODE_D:     camera.ActionOrbitRight,
	sdl.SCANCODE_UP:    camera.ActionRaise,
	sdl.SCANCODE_W:     camera.ActionRaise,
	sdl.SCANCODE_DOWN:  camera.ActionLower,
	sdl.SCANCODE_S:     camera.ActionLower,
}

// ActionForKey returns the camera action bound to a key, or ActionNone.
func ActionForKey(key sdl.Scancode) camera.Action {
	return keyActions[key]
}

func rendererConfig(cfg *config.Config) renderer.Config {
	return renderer.Config{
		Params: geometry.Params{
			Slices: cfg.Scene.Slices,
			Stacks: cfg.Scene.Stacks,
		},
		TexturePath:    cfg.Scene.Texture,
		VertexShader:   cfg.Scene.VertexShader,
		FragmentShader: cfg.Scene.FragmentShader,
		Light:          mgl32.Vec3(cfg.Scene.LightPosition),
		ClearColor:     mgl32.Vec3(cfg.Graphics.ClearColor),
		Pose: scene.Pose{
			LowerArm: cfg.Lamp.LowerArm,
			UpperArm: cfg.Lamp.UpperArm,
			HeadTilt: cfg.Lamp.HeadTilt,
			HeadTurn: cfg.Lamp.HeadTurn,
		},
	}
}

func cameraState(cfg *config.Config) camera.State {
	s := camera.State{Height: cfg.Camera.Height, Radius: cfg.Camera.Radius}
	// Normalizes the azimuth into [0, 360).
	s.Orbit(cfg.Camera.Azimuth)
	return s
}

func cameraControls(cfg *config.Config) camera.Controls {
	return camera.Controls{
		AzimuthStep: cfg.Camera.AzimuthStep,
		HeightStep:  cfg.Camera.HeightStep,
	}
}
