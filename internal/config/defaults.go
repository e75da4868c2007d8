package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/snake.yaml and is used if that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:    20,
			Height:   20,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			Base:  8,
			Boost: 15,
		},
		Fruit: FruitConfig{
			Points: 10,
		},
		Particles: ParticleConfig{
			Burst:    10,
			Life:     20,
			MaxSpeed: 3.0,
		},
		Gesture: GestureConfig{
			MovementThreshold: 0.05,
			PinchThreshold:    0.05,
		},
		Capture: CaptureConfig{
			PollRate: 30,
			Mirror:   true,
		},
		VirtualHand: VirtualHandConfig{
			Swipe:      0.10,
			ReturnStep: 0.02,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
