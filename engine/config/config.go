package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-nav/common"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Engine     EngineConfig     `yaml:"engine" mapstructure:"engine"`
	Window     WindowConfig     `yaml:"window" mapstructure:"window"`
	Navigation NavigationConfig `yaml:"navigation" mapstructure:"navigation"`
	Arm        ArmConfig        `yaml:"arm" mapstructure:"arm"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

type EngineConfig struct {
	TickRate int  `yaml:"tick_rate" mapstructure:"tick_rate"`
	Profile  bool `yaml:"profile" mapstructure:"profile"`
}

type WindowConfig struct {
	Title  string `yaml:"title" mapstructure:"title"`
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
}

// NavigationConfig configures the joystick controller. A zero MaxTravelDistance disables the travel limit.
type NavigationConfig struct {
	MoveSpeed         float32 `yaml:"move_speed" mapstructure:"move_speed"`
	ControlRadius     float32 `yaml:"control_radius" mapstructure:"control_radius"`
	MaxTravelDistance float32 `yaml:"max_travel_distance" mapstructure:"max_travel_distance"`
	ApplyRotation     bool    `yaml:"apply_rotation" mapstructure:"apply_rotation"`
	ShowDebugView     bool    `yaml:"show_debug_view" mapstructure:"show_debug_view"`
}

type ArmConfig struct {
	// LowerHeight is a pointer so an explicit 0 can be told apart from "unset".
	LowerHeight *float32 `yaml:"lower_height" mapstructure:"lower_height"`
	MoveSpeed   float32  `yaml:"move_speed" mapstructure:"move_speed"`
	Tolerance   float32  `yaml:"tolerance" mapstructure:"tolerance"`
	StartHeight float32  `yaml:"start_height" mapstructure:"start_height"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Format     string `yaml:"format" mapstructure:"format"`
	File       string `yaml:"file" mapstructure:"file"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	AddSource  bool   `yaml:"add_source" mapstructure:"add_source"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads a YAML config file and fills unset fields with defaults.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - *Config: the loaded configuration
//   - error: if the file cannot be read or parsed, or fails validation
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data and fills unset fields with defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults replaces zero fields with their defaults.
func (c *Config) ApplyDefaults() {
	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, 60)

	c.Window.Title = common.Coalesce(c.Window.Title, "oxy-nav")
	c.Window.Width = common.Coalesce(c.Window.Width, 1280)
	c.Window.Height = common.Coalesce(c.Window.Height, 720)

	c.Navigation.MoveSpeed = common.Coalesce(c.Navigation.MoveSpeed, 1)
	c.Navigation.ControlRadius = common.Coalesce(c.Navigation.ControlRadius, 2)

	if c.Arm.LowerHeight == nil {
		lower := float32(-10)
		c.Arm.LowerHeight = &lower
	}
	c.Arm.MoveSpeed = common.Coalesce(c.Arm.MoveSpeed, 1.5)
	c.Arm.Tolerance = common.Coalesce(c.Arm.Tolerance, 1)
	c.Arm.StartHeight = common.Coalesce(c.Arm.StartHeight, 5)

	c.Logging.Level = common.Coalesce(c.Logging.Level, "info")
	c.Logging.Format = common.Coalesce(c.Logging.Format, "console")
	c.Logging.MaxSize = common.Coalesce(c.Logging.MaxSize, 10)
	c.Logging.MaxBackups = common.Coalesce(c.Logging.MaxBackups, 3)
	c.Logging.MaxAge = common.Coalesce(c.Logging.MaxAge, 7)
}

// Validate checks value ranges. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	if c.Engine.TickRate < 1 {
		errs = append(errs, fmt.Errorf("%w: engine.tick_rate must be positive, got %d", ErrInvalid, c.Engine.TickRate))
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Navigation.ControlRadius <= 0 {
		errs = append(errs, fmt.Errorf("%w: navigation.control_radius must be positive", ErrInvalid))
	}
	if c.Navigation.MaxTravelDistance < 0 {
		errs = append(errs, fmt.Errorf("%w: navigation.max_travel_distance must not be negative", ErrInvalid))
	}
	if c.Arm.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("%w: arm.tolerance must be positive", ErrInvalid))
	}
	if c.Arm.LowerHeight != nil && *c.Arm.LowerHeight >= c.Arm.StartHeight {
		errs = append(errs, fmt.Errorf("%w: arm.lower_height must be below arm.start_height", ErrInvalid))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format))
	}
	return errors.Join(errs...)
}
