package matching

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/hashing"
	"github.com/lgbarn/chess-go/internal/processing"
	"github.com/lgbarn/chess-go/internal/storage"
)

// PositionMatcher matches games that passed through any of its target
// positions. Targets are compared by position hash, so castling rights and
// usable en passant captures count.
type PositionMatcher struct {
	targets map[uint64]string // hash -> label
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		targets: make(map[uint64]string),
	}
}

// AddMoves adds the position reached by playing moves from the start.
func (pm *PositionMatcher) AddMoves(moves []string, label string) error {
	board, err := processing.ReplayGame(&storage.GameRecord{Moves: moves})
	if err != nil {
		return err
	}
	pm.AddBoard(board, label)
	return nil
}

// AddBoard adds a position to match.
func (pm *PositionMatcher) AddBoard(board *chess.Board, label string) {
	pm.targets[hashing.Hash(board)] = label
}

// PatternCount returns the number of target positions.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.targets)
}

// MatchGame returns the label of the first target the game reached and
// whether there was one. Games that fail to replay never match.
func (pm *PositionMatcher) MatchGame(rec *storage.GameRecord) (string, bool) {
	if len(pm.targets) == 0 {
		return "", false
	}
	analysis, err := processing.AnalyzeGame(rec)
	if err != nil {
		return "", false
	}
	for _, h := range analysis.Positions {
		if label, ok := pm.targets[h]; ok {
			return label, true
		}
	}
	return "", false
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(rec *storage.GameRecord) bool {
	_, ok := pm.MatchGame(rec)
	return ok
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}
