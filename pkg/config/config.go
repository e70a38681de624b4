// Package config loads the room's window, render and control settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/goccy/go-yaml"

	"github.com/leterax/go-livingroom/pkg/camera"
	"github.com/leterax/go-livingroom/pkg/scene"
)

// Shader programs the render loop can draw with
const (
	ProgramScene    = "scene"
	ProgramConstant = "constant"
)

// Window sizes the window and requests the GL context version
type Window struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	VSync   bool   `yaml:"vsync"`
	GLMajor int    `yaml:"gl_major"`
	GLMinor int    `yaml:"gl_minor"`
}

// Render selects the shader program and clear color
type Render struct {
	// Program picks the shader used in the frame loop
	Program string `yaml:"program"`
	// ShaderDir overrides the embedded shader sources when set
	ShaderDir  string     `yaml:"shader_dir"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// Scene holds the fan behaviour and whether the transform knobs apply
type Scene struct {
	FanStep             float64 `yaml:"fan_step"`
	FanDegreesPerSecond float64 `yaml:"fan_degrees_per_second"`
	FanOn               bool    `yaml:"fan_on"`
	ApplyKnobs          bool    `yaml:"apply_knobs"`
}

// Camera sets the starting poses, speeds and bird's-eye Z bounds
type Camera struct {
	Eye             mgl32.Vec3 `yaml:"eye"`
	LookAt          mgl32.Vec3 `yaml:"look_at"`
	BirdEyePosition mgl32.Vec3 `yaml:"bird_eye_position"`
	BirdEyeTarget   mgl32.Vec3 `yaml:"bird_eye_target"`
	MoveSpeed       float32    `yaml:"move_speed"`
	PanSpeed        float32    `yaml:"pan_speed"`
	PositionMinZ    float32    `yaml:"bird_eye_position_min_z"`
	PositionMaxZ    float32    `yaml:"bird_eye_position_max_z"`
	TargetMinZ      float32    `yaml:"bird_eye_target_min_z"`
	TargetMaxZ      float32    `yaml:"bird_eye_target_max_z"`
}

// Controls tunes keyboard handling
type Controls struct {
	// LegacyToggles fires toggle keys on every held frame instead of on press
	LegacyToggles bool `yaml:"legacy_toggles"`
}

// Config is the complete application configuration
type Config struct {
	Window   Window   `yaml:"window"`
	Render   Render   `yaml:"render"`
	Scene    Scene    `yaml:"scene"`
	Camera   Camera   `yaml:"camera"`
	Controls Controls `yaml:"controls"`
}

// Default returns the stock room configuration
func Default() Config {
	return Config{
		Window: Window{
			Width:   800,
			Height:  600,
			Title:   "Living Room",
			VSync:   true,
			GLMajor: 3,
			GLMinor: 3,
		},
		Render: Render{
			Program:    ProgramScene,
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		},
		Scene: Scene{
			FanStep: scene.DefaultFanStep,
		},
		Camera: Camera{
			Eye:             camera.DefaultEye,
			LookAt:          camera.DefaultLookAt,
			BirdEyePosition: camera.DefaultBirdEyePosition,
			BirdEyeTarget:   camera.DefaultBirdEyeTarget,
			MoveSpeed:       camera.DefaultMoveSpeed,
			PanSpeed:        camera.DefaultPanSpeed,
			PositionMinZ:    camera.BirdEyePositionMinZ,
			PositionMaxZ:    camera.BirdEyePositionMaxZ,
			TargetMinZ:      camera.BirdEyeTargetMinZ,
			TargetMaxZ:      camera.BirdEyeTargetMaxZ,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is too old, need 3.3 core", c.Window.GLMajor, c.Window.GLMinor))
	}
	switch c.Render.Program {
	case ProgramScene, ProgramConstant:
	default:
		errs = append(errs, fmt.Errorf("unknown program %q", c.Render.Program))
	}
	if c.Scene.FanStep <= 0 {
		errs = append(errs, errors.New("fan_step must be positive"))
	}
	if c.Scene.FanDegreesPerSecond < 0 {
		errs = append(errs, errors.New("fan_degrees_per_second must not be negative"))
	}
	if c.Camera.PositionMinZ > c.Camera.PositionMaxZ {
		errs = append(errs, errors.New("bird's-eye position bounds are inverted"))
	}
	if c.Camera.TargetMinZ > c.Camera.TargetMaxZ {
		errs = append(errs, errors.New("bird's-eye target bounds are inverted"))
	}
	return errors.Join(errs...)
}

// CameraOptions converts the camera section for camera.NewController
func (c Config) CameraOptions() camera.Options {
	return camera.Options{
		Eye:              c.Camera.Eye,
		LookAt:           c.Camera.LookAt,
		BirdEyePosition:  c.Camera.BirdEyePosition,
		BirdEyeTarget:    c.Camera.BirdEyeTarget,
		MoveSpeed:        c.Camera.MoveSpeed,
		PanSpeed:         c.Camera.PanSpeed,
		BirdEyePositionZ: camera.Bounds{Min: c.Camera.PositionMinZ, Max: c.Camera.PositionMaxZ},
		BirdEyeTargetZ:   camera.Bounds{Min: c.Camera.TargetMinZ, Max: c.Camera.TargetMaxZ},
	}
}
