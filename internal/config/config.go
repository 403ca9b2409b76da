package config

import (
	"time"

	"github.com/caarlos0/env"
	"github.com/pkg/errors"
)

const (
	SourcePendulum = "PENDULUM"
	SourceScreen   = "SCREEN"

	LightLifx = "LIFX"
	LightLog  = "LOG"
)

var colorAlgos = map[string]bool{
	"AVERAGE":         true,
	"SQUARED_AVERAGE": true,
	"MEDIAN":          true,
	"MODE":            true,
}

type Config struct {
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	ColorSource    string        `env:"COLOR_SOURCE" envDefault:"PENDULUM"`
	RenderInterval time.Duration `env:"RENDER_INTERVAL" envDefault:"80ms"`
	Transition     time.Duration `env:"TRANSITION" envDefault:"50ms"`
	LightType      string        `env:"LIGHT_TYPE" envDefault:"LIFX"`
	LightGroupName string        `env:"LIGHT_GROUP_NAME" envDefault:"PENDULUM"`
	MaxBrightness  float64       `env:"MAX_BRIGHTNESS" envDefault:"0.65"`
	MinBrightness  float64       `env:"MIN_BRIGHTNESS" envDefault:"0"`

	Pendulum PendulumConfig
	Screen   ScreenConfig
}

type PendulumConfig struct {
	HueFrom    float64       `env:"PENDULUM_HUE_FROM" envDefault:"200"`
	HueTo      float64       `env:"PENDULUM_HUE_TO" envDefault:"320"`
	Period     time.Duration `env:"PENDULUM_PERIOD" envDefault:"8s"`
	Saturation float64       `env:"PENDULUM_SATURATION" envDefault:"100"`
	Brightness float64       `env:"PENDULUM_BRIGHTNESS" envDefault:"100"`
}

type ScreenConfig struct {
	ColorAlgo     string `env:"COLOR_ALGO" envDefault:"AVERAGE"`
	PixelGridSize int    `env:"PIXEL_GRID_SIZE" envDefault:"5"`
	ScreenNumber  int    `env:"SCREEN_NUMBER" envDefault:"0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var c Config
	// env v3 does not descend into nested structs on its own
	for _, target := range []interface{}{&c, &c.Pendulum, &c.Screen} {
		if err := env.Parse(target); err != nil {
			return c, errors.Wrap(err, "failed to parse environment variables")
		}
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.ColorSource {
	case SourcePendulum, SourceScreen:
	default:
		return errors.Errorf("unknown COLOR_SOURCE %q, valid values are [%s, %s]", c.ColorSource, SourcePendulum, SourceScreen)
	}

	switch c.LightType {
	case LightLifx, LightLog:
	default:
		return errors.Errorf("unknown LIGHT_TYPE %q, valid values are [%s, %s]", c.LightType, LightLifx, LightLog)
	}

	if c.RenderInterval <= 0 {
		return errors.Errorf("RENDER_INTERVAL must be positive, got %v", c.RenderInterval)
	}
	if c.Transition < 0 {
		return errors.Errorf("TRANSITION must not be negative, got %v", c.Transition)
	}
	if c.MinBrightness < 0 || c.MaxBrightness > 1 || c.MinBrightness > c.MaxBrightness {
		return errors.Errorf("brightness bounds must satisfy 0 <= MIN_BRIGHTNESS (%v) <= MAX_BRIGHTNESS (%v) <= 1", c.MinBrightness, c.MaxBrightness)
	}

	if err := c.Pendulum.validate(); err != nil {
		return errors.Wrap(err, "invalid pendulum config")
	}
	if err := c.Screen.validate(); err != nil {
		return errors.Wrap(err, "invalid screen config")
	}
	return nil
}

func (c PendulumConfig) validate() error {
	if c.Period <= 0 {
		return errors.Errorf("PENDULUM_PERIOD must be positive, got %v", c.Period)
	}
	if c.Saturation < 0 || c.Saturation > 100 {
		return errors.Errorf("PENDULUM_SATURATION must be within [0,100], got %v", c.Saturation)
	}
	if c.Brightness < 0 || c.Brightness > 100 {
		return errors.Errorf("PENDULUM_BRIGHTNESS must be within [0,100], got %v", c.Brightness)
	}
	return nil
}

func (c ScreenConfig) validate() error {
	if !colorAlgos[c.ColorAlgo] {
		return errors.Errorf("unknown COLOR_ALGO %q, valid values are [AVERAGE, SQUARED_AVERAGE, MEDIAN, MODE]", c.ColorAlgo)
	}
	if c.PixelGridSize < 1 {
		return errors.Errorf("PIXEL_GRID_SIZE must be at least 1, got %d", c.PixelGridSize)
	}
	if c.ScreenNumber < 0 {
		return errors.Errorf("SCREEN_NUMBER must not be negative, got %d", c.ScreenNumber)
	}
	return nil
}
