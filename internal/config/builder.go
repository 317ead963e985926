package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets who controls each side.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithSeed sets the computer's random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Players.Seed = seed
	return b
}

// WithWorkers sets the size of the computer's scoring pool.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Players.Workers = n
	return b
}

// WithDatabase stores finished games under dir.
func (b *ConfigBuilder) WithDatabase(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	return b
}

// WithSave controls whether finished games are recorded.
func (b *ConfigBuilder) WithSave(enabled bool) *ConfigBuilder {
	b.cfg.Storage.Save = enabled
	return b
}

// WithTUI enables the full-screen terminal display.
func (b *ConfigBuilder) WithTUI(enabled bool) *ConfigBuilder {
	b.cfg.Display.TUI = enabled
	return b
}

// WithFlipped draws the board from black's side.
func (b *ConfigBuilder) WithFlipped(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flipped = enabled
	return b
}

// WithCoords controls the file and rank labels.
func (b *ConfigBuilder) WithCoords(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coords = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithInput sets the console input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
