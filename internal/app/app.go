// Package app runs the interactive lamp viewer: window, input and the frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/luxo/internal/config"
	"github.com/Faultbox/luxo/internal/engine/camera"
	"github.com/Faultbox/luxo/internal/engine/debug"
	"github.com/Faultbox/luxo/internal/engine/gfx"
	"github.com/Faultbox/luxo/internal/engine/gfx/opengl"
	"github.com/Faultbox/luxo/internal/engine/input"
	"github.com/Faultbox/luxo/internal/engine/renderer"
	"github.com/Faultbox/luxo/internal/engine/window"
)

// Title is the window title.
const Title = "Luxo"

// App is the running viewer.
type App struct {
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	gl       gfx.Context

	screenshots *debug.Screenshots
	capture     bool

	camera   camera.State
	controls camera.Controls
}

// New opens the window and builds the scene.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{
		log:      log.Named("app"),
		camera:   cameraState(cfg),
		controls: cameraControls(cfg),

		screenshots: debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "luxo"),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL entry points can only be loaded once the window's context exists.
	ctx, err := opengl.New(log)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	a.gl = ctx
	a.renderer = renderer.New(ctx, rendererConfig(cfg), log)
	a.input = input.New()

	a.log.Info("initialized", zap.Bool("shaders", a.renderer.Ready()))
	return a, nil
}

// Run drives frames until the window is closed or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
		}

		w, h := a.window.DrawableSize()
		a.renderer.RenderFrame(w, h, a.camera)
		if a.capture {
			a.capture = false
			a.saveScreenshot(w, h)
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := a.renderer.Stats()
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Int("draws", stats.Drawn),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handle(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		a.log.Debug("window resized",
			zap.Int("width", event.Width),
			zap.Int("height", event.Height),
		)
	case input.EventKeyDown:
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			a.running = false
			return
		case sdl.SCANCODE_F12:
			if !event.Repeat {
				a.capture = true
			}
			return
		}
		if a.controls.Apply(&a.camera, ActionForKey(event.Key)) {
			a.log.Debug("camera moved",
				zap.Float32("azimuth", a.camera.AzimuthDegrees),
				zap.Float32("height", a.camera.Height),
			)
		}
	}
}

func (a *App) saveScreenshot(w, h int) {
	path, err := a.screenshots.Capture(a.gl, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
