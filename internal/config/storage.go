package config

import (
	"fmt"
	"os"

	"github.com/lgbarn/chess-go/internal/errors"
)

// StorageConfig holds settings for the finished-game archive.
type StorageConfig struct {
	// Dir is the badger directory; empty keeps records in memory.
	Dir string

	// Save records the game when the session closes.
	Save bool
}

// NewStorageConfig creates a StorageConfig with saving enabled in memory.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{Save: true}
}

// Validate checks that Dir, when it exists, is a directory.
func (s *StorageConfig) Validate() error {
	if s.Dir == "" {
		return nil
	}
	if info, err := os.Stat(s.Dir); err == nil && !info.IsDir() {
		return fmt.Errorf("database path %q is not a directory: %w", s.Dir, errors.ErrInvalidConfig)
	}
	return nil
}
