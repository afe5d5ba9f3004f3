// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

// ErrInvalid is returned by Validate for unusable configuration values.
var ErrInvalid = errors.New("config: invalid value")

// SnakeConfig contains all tunable parameters of the game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Map   MapConfig   `yaml:"map"`
	Speed SpeedConfig `yaml:"speed"`
	Audio AudioConfig `yaml:"audio"`
	Rain  RainConfig  `yaml:"rain"`
}

// GridConfig defines the playing field size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MapConfig defines wall generation parameters.
type MapConfig struct {
	DefaultDensity float64 `yaml:"default_density"`
	MaxDensity     float64 `yaml:"max_density"`
	DensityStep    float64 `yaml:"density_step"`
	SafeRadius     int     `yaml:"safe_radius"`
}

// SpeedConfig defines the move interval range in milliseconds.
type SpeedConfig struct {
	DefaultMs int `yaml:"default_ms"`
	MinMs     int `yaml:"min_ms"`
	MaxMs     int `yaml:"max_ms"`
	StepMs    int `yaml:"step_ms"`
}

// Default returns the default move interval.
func (s SpeedConfig) Default() time.Duration { return time.Duration(s.DefaultMs) * time.Millisecond }

// Min returns the shortest allowed move interval.
func (s SpeedConfig) Min() time.Duration { return time.Duration(s.MinMs) * time.Millisecond }

// Max returns the longest allowed move interval.
func (s SpeedConfig) Max() time.Duration { return time.Duration(s.MaxMs) * time.Millisecond }

// Step returns the lobby adjustment step.
func (s SpeedConfig) Step() time.Duration { return time.Duration(s.StepMs) * time.Millisecond }

// AudioConfig defines sound synthesis parameters.
type AudioConfig struct {
	SampleRate    int          `yaml:"sample_rate"`
	DefaultVolume float64      `yaml:"default_volume"`
	VolumeStep    float64      `yaml:"volume_step"`
	Headroom      float64      `yaml:"headroom"`
	Eat           EffectConfig `yaml:"eat"`
	Die           EffectConfig `yaml:"die"`
}

// EffectConfig describes one synthesized sound effect.
type EffectConfig struct {
	FrequencyHz float64 `yaml:"frequency_hz"`
	DurationMs  int     `yaml:"duration_ms"`
	Volume      float64 `yaml:"volume"`
	Gain        float64 `yaml:"gain"` // applied at playback, on top of volume
}

// Duration returns the effect length.
func (e EffectConfig) Duration() time.Duration { return time.Duration(e.DurationMs) * time.Millisecond }

// RainConfig defines the background glyph rain.
type RainConfig struct {
	MinSpeed float64 `yaml:"min_speed"` // rows per second
	MaxSpeed float64 `yaml:"max_speed"`
}

// Validate reports the first unusable value in the configuration.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < 8 || c.Grid.Height < 8:
		return fmt.Errorf("%w: grid %dx%d, need at least 8x8", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Map.MaxDensity < 0 || c.Map.MaxDensity > mapgen.MaxDensity:
		return fmt.Errorf("%w: max_density %v outside [0, %v]", ErrInvalid, c.Map.MaxDensity, mapgen.MaxDensity)
	case c.Map.DefaultDensity < 0 || c.Map.DefaultDensity > c.Map.MaxDensity:
		return fmt.Errorf("%w: default_density %v outside [0, %v]", ErrInvalid, c.Map.DefaultDensity, c.Map.MaxDensity)
	case c.Map.DensityStep <= 0:
		return fmt.Errorf("%w: density_step %v", ErrInvalid, c.Map.DensityStep)
	case c.Map.SafeRadius < 0:
		return fmt.Errorf("%w: safe_radius %d", ErrInvalid, c.Map.SafeRadius)
	case c.Speed.MinMs <= 0 || c.Speed.MinMs > c.Speed.MaxMs:
		return fmt.Errorf("%w: speed range [%d, %d] ms", ErrInvalid, c.Speed.MinMs, c.Speed.MaxMs)
	case c.Speed.DefaultMs < c.Speed.MinMs || c.Speed.DefaultMs > c.Speed.MaxMs:
		return fmt.Errorf("%w: default_ms %d outside [%d, %d]", ErrInvalid, c.Speed.DefaultMs, c.Speed.MinMs, c.Speed.MaxMs)
	case c.Speed.StepMs <= 0:
		return fmt.Errorf("%w: step_ms %d", ErrInvalid, c.Speed.StepMs)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	case c.Audio.DefaultVolume < 0 || c.Audio.DefaultVolume > 1:
		return fmt.Errorf("%w: default_volume %v", ErrInvalid, c.Audio.DefaultVolume)
	case c.Audio.VolumeStep <= 0:
		return fmt.Errorf("%w: volume_step %v", ErrInvalid, c.Audio.VolumeStep)
	case c.Audio.Headroom <= 0 || c.Audio.Headroom > 1:
		return fmt.Errorf("%w: headroom %v", ErrInvalid, c.Audio.Headroom)
	case c.Rain.MinSpeed <= 0 || c.Rain.MinSpeed > c.Rain.MaxSpeed:
		return fmt.Errorf("%w: rain speed [%v, %v]", ErrInvalid, c.Rain.MinSpeed, c.Rain.MaxSpeed)
	}
	for name, e := range map[string]EffectConfig{"eat": c.Audio.Eat, "die": c.Audio.Die} {
		if e.FrequencyHz <= 0 || e.DurationMs <= 0 || e.Volume < 0 || e.Volume > 1 || e.Gain < 0 || e.Gain > 1 {
			return fmt.Errorf("%w: %s effect %+v", ErrInvalid, name, e)
		}
	}
	return nil
}
