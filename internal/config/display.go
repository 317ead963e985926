package config

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	TUI     bool // Full-screen terminal instead of plain text
	Flipped bool // Black at the bottom
	Coords  bool // File and rank labels
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{Coords: true}
}
