package game

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultWidth      = 400
	DefaultHeight     = 400
	DefaultResolution = 20
	DefaultSpeed      = 15 // frames per tick
	DefaultFPS        = 60

	speedStep = 2
)

// Config holds the canvas and pacing settings of a session.
type Config struct {
	Width      int
	Height     int
	Resolution int
	Speed      int
	FPS        int
	Seed       uint64 // 0 picks a time based seed
}

func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Resolution: DefaultResolution,
		Speed:      DefaultSpeed,
		FPS:        DefaultFPS,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.Resolution < 1 || c.Resolution > c.maxResolution() {
		return fmt.Errorf("resolution %d outside [1, %d]: %w", c.Resolution, c.maxResolution(), ErrInvalidConfig)
	}
	if c.Speed < 1 {
		return fmt.Errorf("speed %d must be at least 1 frame per tick: %w", c.Speed, ErrInvalidConfig)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps %d must be positive: %w", c.FPS, ErrInvalidConfig)
	}
	return nil
}

func (c Config) maxResolution() int {
	return min(c.Width, c.Height)
}
