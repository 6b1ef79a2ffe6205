// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Lamp     LampConfig     `yaml:"lamp"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	ClearColor    [3]float32 `yaml:"clear_color,flow"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
}

// CameraConfig holds the starting orbit position and keyboard step sizes.
type CameraConfig struct {
	Azimuth     float32 `yaml:"azimuth"` // degrees
	Height      float32 `yaml:"height"`
	Radius      float32 `yaml:"radius"`
	AzimuthStep float32 `yaml:"azimuth_step"` // degrees per key press
	HeightStep  float32 `yaml:"height_step"`
}

// SceneConfig holds tessellation, asset paths and lighting.
type SceneConfig struct {
	Slices int `yaml:"slices"`
	Stacks int `yaml:"stacks"`

	Texture        string `yaml:"texture"`         // ball image, empty for plain white
	VertexShader   string `yaml:"vertex_shader"`   // empty for the built-in shader
	FragmentShader string `yaml:"fragment_shader"` // empty for the built-in shader

	LightPosition [3]float32 `yaml:"light_position,flow"`
}

// LampConfig holds the lamp joint angles in degrees.
type LampConfig struct {
	LowerArm float32 `yaml:"lower_arm"`
	UpperArm float32 `yaml:"upper_arm"`
	HeadTilt float32 `yaml:"head_tilt"`
	HeadTurn float32 `yaml:"head_turn"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			ClearColor:    [3]float32{0.1, 0.1, 0.1},
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Azimuth:     45,
			Height:      5,
			Radius:      15,
			AzimuthStep: 5,
			HeightStep:  0.5,
		},
		Scene: SceneConfig{
			Slices:        20,
			Stacks:        20,
			LightPosition: [3]float32{5, 10, 5},
		},
		Lamp: LampConfig{
			LowerArm: -30,
			UpperArm: 70,
			HeadTilt: 80,
			HeadTurn: -20,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
