package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. NAVDEMO_ENGINE_TICK_RATE.
const EnvPrefix = "NAVDEMO"

// Override keys understood by ApplyOverrides.
const (
	KeyTickRate      = "engine.tick_rate"
	KeyProfile       = "engine.profile"
	KeyShowDebugView = "navigation.show_debug_view"
	KeyMoveSpeed     = "navigation.move_speed"
	KeyMaxTravel     = "navigation.max_travel_distance"
	KeyApplyRotation = "navigation.apply_rotation"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyLogFile       = "logging.file"
)

// NewViper returns a viper instance reading NAVDEMO_* environment variables for the override keys.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ApplyOverrides copies every override key set in v (by environment, bound flag or explicit Set)
// onto c, then revalidates.
//
// Parameters:
//   - v: the override source
//
// Returns:
//   - error: if the overridden config is invalid
func (c *Config) ApplyOverrides(v *viper.Viper) error {
	if v.IsSet(KeyTickRate) {
		c.Engine.TickRate = v.GetInt(KeyTickRate)
	}
	if v.IsSet(KeyProfile) {
		c.Engine.Profile = v.GetBool(KeyProfile)
	}
	if v.IsSet(KeyShowDebugView) {
		c.Navigation.ShowDebugView = v.GetBool(KeyShowDebugView)
	}
	if v.IsSet(KeyMoveSpeed) {
		c.Navigation.MoveSpeed = float32(v.GetFloat64(KeyMoveSpeed))
	}
	if v.IsSet(KeyMaxTravel) {
		c.Navigation.MaxTravelDistance = float32(v.GetFloat64(KeyMaxTravel))
	}
	if v.IsSet(KeyApplyRotation) {
		c.Navigation.ApplyRotation = v.GetBool(KeyApplyRotation)
	}
	if v.IsSet(KeyLogLevel) {
		c.Logging.Level = v.GetString(KeyLogLevel)
	}
	if v.IsSet(KeyLogFormat) {
		c.Logging.Format = v.GetString(KeyLogFormat)
	}
	if v.IsSet(KeyLogFile) {
		c.Logging.File = v.GetString(KeyLogFile)
	}
	return c.Validate()
}
