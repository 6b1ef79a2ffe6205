package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.ClearColor != [3]float32{0.1, 0.1, 0.1} {
		t.Errorf("expected clear color 0.1 grey, got %v", cfg.Graphics.ClearColor)
	}
	if cfg.Graphics.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir screenshots, got %q", cfg.Graphics.ScreenshotDir)
	}

	// Camera
	if cfg.Camera.Azimuth != 45 || cfg.Camera.Height != 5 || cfg.Camera.Radius != 15 {
		t.Errorf("unexpected camera defaults: %+v", cfg.Camera)
	}

	// Scene
	if cfg.Scene.Slices != 20 || cfg.Scene.Stacks != 20 {
		t.Errorf("expected 20x20 tessellation, got %dx%d", cfg.Scene.Slices, cfg.Scene.Stacks)
	}
	if cfg.Scene.LightPosition != [3]float32{5, 10, 5} {
		t.Errorf("expected light at (5,10,5), got %v", cfg.Scene.LightPosition)
	}
	if cfg.Scene.Texture != "" {
		t.Errorf("expected no texture by default, got %s", cfg.Scene.Texture)
	}

	// Lamp
	want := LampConfig{LowerArm: -30, UpperArm: 70, HeadTilt: 80, HeadTurn: -20}
	if cfg.Lamp != want {
		t.Errorf("expected lamp %+v, got %+v", want, cfg.Lamp)
	}

	// Logging
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  clear_color: [0, 0, 0.2]

camera:
  azimuth: 90
  radius: 20
  azimuth_step: 2.5

scene:
  slices: 32
  stacks: 16
  texture: "assets/ball.png"
  light_position: [0, 8, 0]

lamp:
  lower_arm: -10
  head_turn: 45

logging:
  level: "debug"
  log_file: "luxo.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.ClearColor != [3]float32{0, 0, 0.2} {
		t.Errorf("expected clear color (0,0,0.2), got %v", cfg.Graphics.ClearColor)
	}

	if cfg.Camera.Azimuth != 90 || cfg.Camera.Radius != 20 || cfg.Camera.AzimuthStep != 2.5 {
		t.Errorf("unexpected camera: %+v", cfg.Camera)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Camera.Height != 5 || cfg.Camera.HeightStep != 0.5 {
		t.Errorf("expected default height and step, got %+v", cfg.Camera)
	}

	if cfg.Scene.Slices != 32 || cfg.Scene.Stacks != 16 {
		t.Errorf("expected 32x16, got %dx%d", cfg.Scene.Slices, cfg.Scene.Stacks)
	}
	if cfg.Scene.Texture != "assets/ball.png" {
		t.Errorf("expected texture assets/ball.png, got %s", cfg.Scene.Texture)
	}
	if cfg.Scene.LightPosition != [3]float32{0, 8, 0} {
		t.Errorf("expected light (0,8,0), got %v", cfg.Scene.LightPosition)
	}

	want := LampConfig{LowerArm: -10, UpperArm: 70, HeadTilt: 80, HeadTurn: 45}
	if cfg.Lamp != want {
		t.Errorf("expected lamp %+v, got %+v", want, cfg.Lamp)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "luxo.log" {
		t.Errorf("expected log file 'luxo.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown key", "graphics:\n  fps_limit: 60\n"},
		{"wrong type", "scene:\n  slices: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty file changed config: %+v", cfg)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }},
		{"two slices", func(c *Config) { c.Scene.Slices = 2 }},
		{"zero stacks", func(c *Config) { c.Scene.Stacks = 0 }},
		{"zero radius", func(c *Config) { c.Camera.Radius = 0 }},
		{"negative radius", func(c *Config) { c.Camera.Radius = -4 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}

	cfg := Default()
	cfg.Logging.Level = "WARN"
	if err := cfg.Validate(); err != nil {
		t.Errorf("level should be case-insensitive: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Texture = "ball.jpg"
	cfg.Lamp.HeadTurn = 10
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Scene.Texture != "ball.jpg" || loaded.Lamp.HeadTurn != 10 {
		t.Errorf("saved values not restored: %+v", loaded)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "texture flag",
			setup: func() { *flagTexture = "/tmp/wood.png" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Texture != "/tmp/wood.png" {
					t.Errorf("expected texture /tmp/wood.png, got %s", cfg.Scene.Texture)
				}
			},
			teardown: func() { *flagTexture = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
scene:
  texture: from-file.png
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	*flagTexture = "from-flag.png"
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagTexture = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Scene.Texture != "from-flag.png" {
		t.Errorf("expected texture from flag, got %s", cfg.Scene.Texture)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  slices: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
