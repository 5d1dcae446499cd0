package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Display DisplayConfig `yaml:"display"`
	Scene   SceneConfig   `yaml:"scene"`
	Camera  CameraConfig  `yaml:"camera"`

	// StateFile is where the camera and display flags are restored from and
	// saved to. Empty disables persistence.
	StateFile string `yaml:"state_file"`

	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	TPS       int    `yaml:"tps"`
}

// DisplayConfig holds colors as "#rrggbb" strings. The axis and the help
// window are always shown at startup.
type DisplayConfig struct {
	Foreground     string `yaml:"foreground"`
	Background     string `yaml:"background"`
	FPSIsDisplayed bool   `yaml:"fps_is_displayed"`
}

type SceneConfig struct {
	// RibbonScale converts the unit ribbon into scene units.
	RibbonScale float64 `yaml:"ribbon_scale"`
	Outlines    bool    `yaml:"outlines"`
}

type CameraConfig struct {
	RotationSensitivity    float64 `yaml:"rotation_sensitivity"`    // radians per pixel
	TranslationSensitivity float64 `yaml:"translation_sensitivity"` // 1 = follow the cursor
	WheelSensitivity       float64 `yaml:"wheel_sensitivity"`       // fraction of the distance per notch
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Constrained Camera",
			Width:     800,
			Height:    600,
			Resizable: true,
			TPS:       60,
		},
		Display: DisplayConfig{
			Foreground: "#b4b4b4",
			Background: "#333333",
		},
		Scene: SceneConfig{
			RibbonScale: 100,
			Outlines:    true,
		},
		Camera: CameraConfig{
			RotationSensitivity:    0.01,
			TranslationSensitivity: 1,
			WheelSensitivity:       0.1,
		},
		StateFile: ".constrainedcamera.yaml",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config on top of the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv("CONSTRAINEDCAMERA_STATE_FILE"); ok {
		c.StateFile = v
	}
	if v := os.Getenv("CONSTRAINEDCAMERA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for values the viewer cannot use.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Scene.RibbonScale <= 0 {
		return fmt.Errorf("scene.ribbon_scale must be positive, got %g", c.Scene.RibbonScale)
	}
	if c.Camera.RotationSensitivity <= 0 || c.Camera.TranslationSensitivity <= 0 || c.Camera.WheelSensitivity <= 0 {
		return fmt.Errorf("camera sensitivities must be positive")
	}
	if _, err := c.ForegroundColor(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) ForegroundColor() (color.RGBA, error) {
	return parseColor("display.foreground", c.Display.Foreground)
}

func (c *Config) BackgroundColor() (color.RGBA, error) {
	return parseColor("display.background", c.Display.Background)
}

func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return level, fmt.Errorf("invalid logging.level: %w", err)
	}
	return level, nil
}

func parseColor(field, hex string) (color.RGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid %s %q: %w", field, hex, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
