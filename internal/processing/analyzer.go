// Package processing replays recorded games and reports what happened in
// them: draw rules that became available, underpromotions and whether the
// recorded result matches the final position.
package processing

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/hashing"
	"github.com/lgbarn/chess-go/internal/history"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/storage"
)

// Plies after which the seventy-five move rule ends a game.
const seventyFiveMovePlies = 150

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard        *chess.Board
	FinalStatus       engine.Status // For the side to move after the last ply
	ToMove            chess.Colour
	Plies             int
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // Position hashes, one per ply plus the start

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
}

// FiftyMoveTriggered returns true if a fifty-move claim became available.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int // 1-based; 0 when the moves replay cleanly
	ErrorMsg string
}

// replay applies moves from the initial position, calling visit after each
// ply with the outcome and the promotion kind (NoPiece if none).
func replay(moves []string, promotions map[int]string, visit func(board *chess.Board, outcome chess.Outcome, promoted chess.Kind)) (*chess.Board, error) {
	board := chess.NewInitialBoard()
	colour := chess.White

	for ply, text := range moves {
		from, to, err := notation.ParseMove(text)
		if err == nil {
			err = engine.ValidateMove(board, from, to, colour)
		}
		if err != nil {
			return board, &errors.MoveError{Err: err, Ply: ply + 1, Colour: colour.String(), Text: text}
		}

		outcome, err := engine.MovePiece(board, from, to)
		if err != nil {
			return board, &errors.MoveError{Err: err, Ply: ply + 1, Colour: colour.String(), Text: text}
		}

		promoted := chess.NoPiece
		if outcome == chess.PawnPromotion {
			promoted, err = notation.ParsePromotion(promotions[ply])
			if err == nil {
				err = engine.PromotePawn(board, promoted, to)
			}
			if err != nil {
				return board, &errors.MoveError{Err: err, Ply: ply + 1, Colour: colour.String(), Text: text}
			}
		}

		if visit != nil {
			visit(board, outcome, promoted)
		}
		colour = colour.Opposite()
	}
	return board, nil
}

// ReplayGame replays a record to get the final board state.
func ReplayGame(rec *storage.GameRecord) (*chess.Board, error) {
	return replay(rec.Moves, rec.Promotions, nil)
}

// AnalyzeGame replays a record and analyzes it for draw rules and
// underpromotions.
func AnalyzeGame(rec *storage.GameRecord) (*GameAnalysis, error) {
	analysis := &GameAnalysis{}
	positions := history.New()
	var fifty history.FiftyMoveCounter

	start := chess.NewInitialBoard()
	positions.UpdateHistory(start)
	analysis.Positions = append(analysis.Positions, hashing.Hash(start))

	board, err := replay(rec.Moves, rec.Promotions, func(board *chess.Board, outcome chess.Outcome, promoted chess.Kind) {
		analysis.Plies++

		fifty.Record(outcome)
		if fifty.CanClaim() {
			analysis.HasFiftyMoveRule = true
		}
		if fifty.Plies() >= seventyFiveMovePlies {
			analysis.Has75MoveRule = true
		}

		if promoted != chess.NoPiece && promoted != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		positions.UpdateHistory(board)
		analysis.Positions = append(analysis.Positions, hashing.Hash(board))

		repeats := positions.Repeats()
		if repeats >= history.RepeatsForClaim {
			analysis.HasRepetition = true
		}
		if repeats >= 5 {
			analysis.Has5FoldRepetition = true
		}
	})
	if err != nil {
		return nil, err
	}

	analysis.ToMove = chess.White
	if analysis.Plies%2 == 1 {
		analysis.ToMove = chess.Black
	}
	analysis.FinalStatus = engine.PositionStatus(board, analysis.ToMove)
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(board)
	analysis.FinalBoard = board
	return analysis, nil
}

// ValidateGame checks that every move is legal and that the recorded
// result agrees with the final position.
func ValidateGame(rec *storage.GameRecord) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if rec.Plies != len(rec.Moves) {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("plies %d does not match %d moves", rec.Plies, len(rec.Moves))
		return result
	}

	analysis, err := AnalyzeGame(rec)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			result.ErrorPly = moveErr.Ply
		}
		return result
	}

	var problem string
	switch rec.Reason {
	case storage.ReasonCheckmate:
		if analysis.FinalStatus != engine.Checkmate {
			problem = "recorded checkmate but the final position is not mate"
		} else if winner := analysis.ToMove.Opposite(); !sameColour(rec.Winner, winner) {
			problem = fmt.Sprintf("recorded winner %q but %s delivered mate", rec.Winner, winner)
		}
	case storage.ReasonStalemate:
		if analysis.FinalStatus != engine.Stalemate {
			problem = "recorded stalemate but the final position is not stalemate"
		}
	case storage.ReasonFifty:
		if !analysis.HasFiftyMoveRule {
			problem = "recorded fifty move draw but no claim was available"
		}
	case storage.ReasonThreefold:
		if !analysis.HasRepetition {
			problem = "recorded repetition draw but no position repeated three times"
		}
	}
	if problem != "" {
		result.Valid = false
		result.ErrorMsg = problem
	}
	return result
}

func sameColour(name string, c chess.Colour) bool {
	return (name == "white" && c == chess.White) || (name == "black" && c == chess.Black)
}
