package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if cfg.Output != os.Stdout {
		t.Error("Output should default to stdout")
	}
	if cfg.Players.White != Human || cfg.Players.Black != Human {
		t.Errorf("Players = %v/%v, want human/human", cfg.Players.White, cfg.Players.Black)
	}
	if cfg.Players.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Players.Workers)
	}
	if !cfg.Storage.Save {
		t.Error("Storage.Save should be true by default")
	}
	if cfg.Storage.Dir != "" {
		t.Errorf("Storage.Dir = %q, want in-memory", cfg.Storage.Dir)
	}
	if cfg.Display.TUI || cfg.Display.Flipped {
		t.Error("TUI and Flipped should be false by default")
	}
	if !cfg.Display.Coords {
		t.Error("Coords should be true by default")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestParsePlayerKind(t *testing.T) {
	tests := []struct {
		input   string
		want    PlayerKind
		wantErr bool
	}{
		{"human", Human, false},
		{"computer", Computer, false},
		{"robot", Human, true},
		{"", Human, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlayerKind(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, got.String(), tt.input)
		})
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:   "computer against computer",
			mutate: func(c *Config) { c.Players.White, c.Players.Black = Computer, Computer },
		},
		{
			name:    "negative verbosity",
			mutate:  func(c *Config) { c.Verbosity = -1 },
			wantErr: true,
		},
		{
			name:    "unknown player kind",
			mutate:  func(c *Config) { c.Players.Black = PlayerKind(7) },
			wantErr: true,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Players.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Players.Workers = MaxWorkers + 1 },
			wantErr: true,
		},
		{
			name:    "database without saving",
			mutate:  func(c *Config) { c.Storage.Dir, c.Storage.Save = "games", false },
			wantErr: false,
		},
		{
			name:    "missing section",
			mutate:  func(c *Config) { c.Display = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.Output != buf {
		t.Error("SetOutput did not set Output")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	in := strings.NewReader("e2 e4\n")

	cfg := NewConfigBuilder().
		WithPlayers(Human, Computer).
		WithSeed(42).
		WithWorkers(4).
		WithDatabase("/tmp/games").
		WithSave(true).
		WithTUI(true).
		WithFlipped(true).
		WithCoords(false).
		WithOutput(out).
		WithInput(in).
		WithLogFile(log).
		WithVerbosity(2).
		Build()

	if cfg.Players.Black != Computer {
		t.Errorf("Black = %v, want computer", cfg.Players.Black)
	}
	testutil.AssertEqual(t, cfg.Players.Seed, int64(42))
	testutil.AssertEqual(t, cfg.Players.Workers, 4)
	testutil.AssertEqual(t, cfg.Storage.Dir, "/tmp/games")
	testutil.AssertEqual(t, *cfg.Display, DisplayConfig{TUI: true, Flipped: true, Coords: false})
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	if cfg.Output != out || cfg.LogFile != log || cfg.Input != in {
		t.Error("builder did not set streams")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestStorageDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "games")
	if err := os.WriteFile(file, []byte("not a database"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.Storage.Dir = file
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)

	cfg.Storage.Dir = filepath.Dir(file)
	testutil.AssertNoError(t, cfg.Validate())
}
