// Package config provides configuration for a chess session.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-go/internal/errors"
)

// PlayerKind selects who controls one side of the board.
type PlayerKind int

const (
	Human    PlayerKind = iota // Moves typed at the console or terminal UI
	Computer                   // Moves picked by the built-in opponent
)

var playerKindNames = map[string]PlayerKind{
	"human":    Human,
	"computer": Computer,
}

// String returns the flag spelling of the kind.
func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "human"
	case Computer:
		return "computer"
	}
	return fmt.Sprintf("PlayerKind(%d)", int(k))
}

// ParsePlayerKind converts "human" or "computer" into a PlayerKind.
func ParsePlayerKind(s string) (PlayerKind, error) {
	if k, ok := playerKindNames[s]; ok {
		return k, nil
	}
	return Human, fmt.Errorf("unknown player kind %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all configuration for a game session.
type Config struct {
	// Verbosity controls how much the session logs: 0 silent, 1 results,
	// 2 every move.
	Verbosity int

	// LogFile receives diagnostic output.
	LogFile io.Writer

	// Output receives the board and prompts in console mode.
	Output io.Writer

	// Input supplies console answers.
	Input io.Reader

	Players *PlayerConfig
	Storage *StorageConfig
	Display *DisplayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		LogFile:   os.Stderr,
		Output:    os.Stdout,
		Input:     os.Stdin,
		Players:   NewPlayerConfig(),
		Storage:   NewStorageConfig(),
		Display:   NewDisplayConfig(),
	}
}

// SetOutput sets the console output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("negative verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Players == nil || c.Storage == nil || c.Display == nil {
		return fmt.Errorf("missing config section: %w", errors.ErrInvalidConfig)
	}
	if err := c.Players.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}
