package game

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/player"
)

// NewPlayers seats the configured kinds. Humans answer through prompter.
func NewPlayers(cfg *config.PlayerConfig, prompter player.Prompter) (white, black player.Player, err error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	seat := func(kind config.PlayerKind, colour chess.Colour) (player.Player, error) {
		switch kind {
		case config.Human:
			if prompter == nil {
				return nil, fmt.Errorf("%s is human but there is no prompter: %w", colour, errors.ErrInvalidConfig)
			}
			return player.NewHuman(colour, prompter), nil
		case config.Computer:
			// Distinct seeds keep two computers from mirroring each other.
			return player.NewComputer(colour,
				player.WithSeed(seed+int64(colour)),
				player.WithWorkers(cfg.Workers),
			), nil
		}
		return nil, fmt.Errorf("player kind %v: %w", kind, errors.ErrInvalidConfig)
	}

	if white, err = seat(cfg.White, chess.White); err != nil {
		return nil, nil, err
	}
	if black, err = seat(cfg.Black, chess.Black); err != nil {
		return nil, nil, err
	}
	return white, black, nil
}
