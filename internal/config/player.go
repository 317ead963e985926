package config

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/errors"
)

// MaxWorkers bounds the computer's scoring pool.
const MaxWorkers = 64

// PlayerConfig holds settings for the two sides.
type PlayerConfig struct {
	White PlayerKind
	Black PlayerKind

	// Seed feeds the computer's tie-breaking; zero picks a time-based seed.
	Seed int64

	// Workers is the number of goroutines scoring candidate moves.
	Workers int
}

// NewPlayerConfig creates a PlayerConfig for two humans.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		White:   Human,
		Black:   Human,
		Workers: 1,
	}
}

// Validate checks that the player configuration is valid.
func (p *PlayerConfig) Validate() error {
	for _, k := range []PlayerKind{p.White, p.Black} {
		if k != Human && k != Computer {
			return fmt.Errorf("unknown player kind %d: %w", int(k), errors.ErrInvalidConfig)
		}
	}
	if p.Workers < 1 || p.Workers > MaxWorkers {
		return fmt.Errorf("workers (%d) must be between 1 and %d: %w",
			p.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	return nil
}
