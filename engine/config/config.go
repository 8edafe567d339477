// Package config loads the viewer configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/logger"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const defaultTitle = "oxy viewer"

// Config is the complete viewer configuration. Angles are in degrees, the unit people write by hand.
type Config struct {
	Window     WindowConfig        `yaml:"window"`
	Camera     CameraConfig        `yaml:"camera"`
	Controller ControllerConfig    `yaml:"controller"`
	Scene      SceneConfig         `yaml:"scene"`
	Renderer   RendererConfig      `yaml:"renderer"`
	Logger     logger.LoggerConfig `yaml:"logger"`
}

// WindowConfig sizes the window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig holds the initial camera pose and the projection parameters.
type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Yaw      float32    `yaml:"yaw"`
	Pitch    float32    `yaml:"pitch"`
	FovY     float32    `yaml:"fov_y"`
	ZNear    float32    `yaml:"z_near"`
	ZFar     float32    `yaml:"z_far"`
}

// ControllerConfig tunes the free-fly controller.
type ControllerConfig struct {
	MoveSpeed         float32 `yaml:"move_speed"`
	LookSensitivity   float32 `yaml:"look_sensitivity"`
	ScrollSensitivity float32 `yaml:"scroll_sensitivity"`
}

// SceneConfig selects the model and the instance grid.
type SceneConfig struct {
	Model           string  `yaml:"model"`
	InstancesPerRow int     `yaml:"instances_per_row"`
	InstanceSpacing float32 `yaml:"instance_spacing"`
}

// RendererConfig holds frame presentation settings.
type RendererConfig struct {
	ClearColor  [4]float64 `yaml:"clear_color"`
	PresentMode string     `yaml:"present_mode"` // fifo or immediate
}

// Default returns the configuration the viewer uses when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  defaultTitle,
			Width:  800,
			Height: 600,
		},
		Camera: CameraConfig{
			Position: [3]float32{-1.2, 13, 25},
			Yaw:      -90,
			Pitch:    -5,
			FovY:     45,
			ZNear:    0.1,
			ZFar:     100,
		},
		Controller: ControllerConfig{
			MoveSpeed:         4,
			LookSensitivity:   0.4,
			ScrollSensitivity: 40,
		},
		Scene: SceneConfig{
			InstancesPerRow: 1,
			InstanceSpacing: 3,
		},
		Renderer: RendererConfig{
			ClearColor:  [4]float64{0.1, 0.2, 0.3, 1},
			PresentMode: "fifo",
		},
		Logger: logger.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults and validates the result.
// A missing file yields the defaults. Unknown keys are rejected.
//
// Parameters:
//   - path: the YAML file path, or "" for defaults only
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg. Keys absent from the document keep their current values.
//
// Parameters:
//   - r: the YAML source
//   - cfg: the configuration to update in place
//
// Returns:
//   - error: error on malformed YAML or unknown keys
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, defaultTitle)
	return nil
}

// Validate reports every out-of-range value, joined into one error wrapping ErrInvalidConfig.
//
// Returns:
//   - error: nil if the configuration is usable
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.ZNear <= 0 || c.Camera.ZFar <= c.Camera.ZNear {
		invalid("clip planes near=%v far=%v must satisfy 0 < near < far", c.Camera.ZNear, c.Camera.ZFar)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		invalid("fov_y %v must be in (0, 180)", c.Camera.FovY)
	}
	if c.Camera.Pitch < -89 || c.Camera.Pitch > 89 {
		invalid("pitch %v must be in [-89, 89]", c.Camera.Pitch)
	}
	if c.Controller.MoveSpeed <= 0 {
		invalid("move_speed %v must be positive", c.Controller.MoveSpeed)
	}
	if c.Controller.LookSensitivity <= 0 {
		invalid("look_sensitivity %v must be positive", c.Controller.LookSensitivity)
	}
	if c.Controller.ScrollSensitivity < 0 {
		invalid("scroll_sensitivity %v must not be negative", c.Controller.ScrollSensitivity)
	}
	if c.Scene.InstancesPerRow <= 0 {
		invalid("instances_per_row %d must be positive", c.Scene.InstancesPerRow)
	}
	if c.Scene.InstanceSpacing < 0 {
		invalid("instance_spacing %v must not be negative", c.Scene.InstanceSpacing)
	}
	switch c.Renderer.PresentMode {
	case "fifo", "immediate":
	default:
		invalid("present_mode %q must be fifo or immediate", c.Renderer.PresentMode)
	}

	return errors.Join(errs...)
}
