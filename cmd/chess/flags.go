// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/eco"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/matching"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/storage"
)

var (
	// Players
	whitePlayer = flag.String("white", "human", "White player: human or computer")
	blackPlayer = flag.String("black", "human", "Black player: human or computer")
	seed        = flag.Int64("seed", 0, "Random seed for computer players (0 = time based)")
	workers     = flag.Int("workers", 1, "Goroutines scoring computer moves")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 results, 2 every move")
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")

	// Game records
	dbDir     = flag.String("db", "", "Directory for recorded games (default: per-user data directory; \":memory:\" keeps them in memory)")
	noSave    = flag.Bool("nosave", false, "Don't record the game")
	listGames = flag.Bool("list", false, "List recorded games and exit")
	analyzeID = flag.Uint64("analyze", 0, "Replay and check recorded game N, then exit")

	// Export
	exportGames = flag.Bool("export", false, "Write recorded games as PGN and exit")
	jsonOutput  = flag.Bool("J", false, "Export in JSON format")
	jsonStream  = flag.Bool("stream", false, "With -J, write one JSON object per game as it is read")
	lineLength  = flag.Int("w", 80, "Maximum line length for exported moves")

	// Selection for -list and -export
	winnerFilter  = flag.String("winner", "", "Only games won by white or black, or none for drawn and abandoned")
	reasonFilter  = flag.String("reason", "", "Only games that ended this way, e.g. checkmate")
	playerFilter  = flag.String("player", "", "Only games with a human or computer on either side")
	minPlies      = flag.Int("minply", 0, "Only games of at least N plies")
	maxPlies      = flag.Int("maxply", 0, "Only games of at most N plies (0 = no limit)")
	reachedFilter = flag.String("reached", "", "Only games passing the position after these moves, e.g. \"e2e4 e7e5\"")
	ecoPrefix     = flag.String("Te", "", "Only games whose ECO code starts with this prefix")
	filterFile    = flag.String("t", "", "File of selection criteria")
	matchAny      = flag.Bool("any", false, "Select games meeting any criterion instead of all")

	// ECO classification
	ecoFile = flag.String("e", "", "ECO table file (default: built-in table)")

	// Display
	useTUI   = flag.Bool("tui", false, "Full-screen terminal board")
	flip     = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords = flag.Bool("nocoords", false, "Don't label files and ranks")

	// Input
	movesFile = flag.String("moves", "", "File of moves (one per line) to play before asking the players")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	if err := applyStorageFlags(cfg); err != nil {
		return err
	}
	applyDisplayFlags(cfg)

	cfg.Verbosity = *verbosity
	return cfg.Validate()
}

func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Players.White = white
	cfg.Players.Black = black
	cfg.Players.Seed = *seed
	cfg.Players.Workers = *workers
	return nil
}

// applyStorageFlags resolves -db: empty means the per-user archive and
// storage.MemoryDir keeps records in memory.
func applyStorageFlags(cfg *config.Config) error {
	dir := *dbDir
	switch dir {
	case "":
		var err error
		if dir, err = storage.DatabaseDir(); err != nil {
			return errors.Wrap(err, "locating the game archive")
		}
	case storage.MemoryDir:
		dir = ""
	}
	cfg.Storage.Dir = dir
	cfg.Storage.Save = !*noSave
	return nil
}

func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.TUI = *useTUI
	cfg.Display.Flipped = *flip
	cfg.Display.Coords = !*noCoords
}

// buildFilter collects the selection flags into a game filter.
func buildFilter() (*matching.GameFilter, error) {
	gf := matching.NewGameFilter()

	if *filterFile != "" {
		file, err := os.Open(*filterFile)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		if err := gf.Load(file); err != nil {
			return nil, err
		}
	}
	if *matchAny {
		gf.SetMatchAny(true)
	}
	if *winnerFilter != "" {
		if err := gf.AddWinnerFilter(*winnerFilter); err != nil {
			return nil, err
		}
	}
	if *reasonFilter != "" {
		gf.AddReasonFilter(*reasonFilter)
	}
	if *playerFilter != "" {
		gf.AddPlayerFilter(*playerFilter)
	}
	if *minPlies != 0 || *maxPlies != 0 {
		if err := gf.AddPlyFilter(*minPlies, *maxPlies); err != nil {
			return nil, err
		}
	}
	if *ecoPrefix != "" {
		gf.AddECOFilter(*ecoPrefix)
	}
	if *reachedFilter != "" {
		if err := gf.AddReachedFilter(notation.SplitMoves(*reachedFilter), *reachedFilter); err != nil {
			return nil, err
		}
	}
	return gf, nil
}

// loadOpenings returns the -e table or the built-in one.
func loadOpenings() (*eco.ECOClassifier, error) {
	if *ecoFile == "" {
		return eco.NewDefaultClassifier(), nil
	}
	ec := eco.NewECOClassifier()
	if err := ec.LoadFromFile(*ecoFile); err != nil {
		return nil, err
	}
	if ec.EntriesLoaded() == 0 {
		return nil, fmt.Errorf("ECO file %s has no openings: %w", *ecoFile, errors.ErrInvalidInput)
	}
	return ec, nil
}
