package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches the
// embedded defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		Map: MapConfig{
			DefaultDensity: 0.10,
			MaxDensity:     0.35,
			DensityStep:    0.02,
			SafeRadius:     2,
		},
		Speed: SpeedConfig{
			DefaultMs: 120,
			MinMs:     50,
			MaxMs:     350,
			StepMs:    20,
		},
		Audio: AudioConfig{
			SampleRate:    44100,
			DefaultVolume: 1.0,
			VolumeStep:    0.05,
			Headroom:      0.7,
			Eat: EffectConfig{
				FrequencyHz: 880,
				DurationMs:  80,
				Volume:      0.6,
				Gain:        0.35,
			},
			Die: EffectConfig{
				FrequencyHz: 110,
				DurationMs:  250,
				Volume:      0.7,
				Gain:        0.6,
			},
		},
		Rain: RainConfig{
			MinSpeed: 6,
			MaxSpeed: 18,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
