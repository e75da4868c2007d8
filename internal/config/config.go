// Package config provides YAML-based configuration loading for the game,
// the gesture classifier and the landmark sources.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete runtime configuration.
type Config struct {
	Grid        GridConfig        `yaml:"grid"`
	Speed       SpeedConfig       `yaml:"speed"`
	Fruit       FruitConfig       `yaml:"fruit"`
	Particles   ParticleConfig    `yaml:"particles"`
	Gesture     GestureConfig     `yaml:"gesture"`
	Capture     CaptureConfig     `yaml:"capture"`
	VirtualHand VirtualHandConfig `yaml:"virtual_hand"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Width    int `yaml:"width"`     // Cells
	Height   int `yaml:"height"`    // Cells
	CellSize int `yaml:"cell_size"` // Notional pixels per cell, used for particle space
}

// SpeedConfig defines tick rates in ticks per second.
type SpeedConfig struct {
	Base  int `yaml:"base"`
	Boost int `yaml:"boost"`
}

// FruitConfig defines scoring.
type FruitConfig struct {
	Points int `yaml:"points"`
}

// ParticleConfig defines the burst spawned when a fruit is eaten.
type ParticleConfig struct {
	Burst    int     `yaml:"burst"`     // Particles per burst
	Life     int     `yaml:"life"`      // Ticks each particle lives
	MaxSpeed float64 `yaml:"max_speed"` // Velocity components are uniform in [-max, max] pixels/tick
}

// GestureConfig defines classifier thresholds in normalized image units.
type GestureConfig struct {
	MovementThreshold float64 `yaml:"movement_threshold"`
	PinchThreshold    float64 `yaml:"pinch_threshold"`
}

// CaptureConfig defines landmark source behavior.
type CaptureConfig struct {
	PollRate int  `yaml:"poll_rate"` // Polls per second for sources without their own clock
	Mirror   bool `yaml:"mirror"`    // Flip x so motion matches the user's point of view
}

// VirtualHandConfig tunes the keyboard-driven hand.
type VirtualHandConfig struct {
	Swipe      float64 `yaml:"swipe"`       // Wrist jump per key press
	ReturnStep float64 `yaml:"return_step"` // Per-poll drift back to center
}

// Validate checks that the configuration can run a game.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if c.Speed.Base <= 0 || c.Speed.Boost <= 0 {
		errs = append(errs, fmt.Errorf("speed.base and speed.boost must be positive, got %d/%d", c.Speed.Base, c.Speed.Boost))
	}
	if c.Fruit.Points <= 0 {
		errs = append(errs, fmt.Errorf("fruit.points must be positive, got %d", c.Fruit.Points))
	}
	if c.Particles.Burst < 0 || c.Particles.Life < 0 || c.Particles.MaxSpeed < 0 {
		errs = append(errs, errors.New("particles values must not be negative"))
	}
	if c.Gesture.MovementThreshold <= 0 || c.Gesture.PinchThreshold <= 0 {
		errs = append(errs, fmt.Errorf("gesture thresholds must be positive, got %v/%v",
			c.Gesture.MovementThreshold, c.Gesture.PinchThreshold))
	}
	if c.Capture.PollRate <= 0 {
		errs = append(errs, fmt.Errorf("capture.poll_rate must be positive, got %d", c.Capture.PollRate))
	}
	if c.VirtualHand.Swipe <= c.Gesture.MovementThreshold {
		errs = append(errs, fmt.Errorf("virtual_hand.swipe (%v) must exceed gesture.movement_threshold (%v)",
			c.VirtualHand.Swipe, c.Gesture.MovementThreshold))
	}
	if c.VirtualHand.ReturnStep <= 0 || c.VirtualHand.ReturnStep > c.Gesture.MovementThreshold {
		errs = append(errs, fmt.Errorf("virtual_hand.return_step (%v) must be in (0, gesture.movement_threshold]",
			c.VirtualHand.ReturnStep))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
