package processing

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/storage"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func gameOf(reason, winner string, moves ...string) *storage.GameRecord {
	return &storage.GameRecord{
		Winner: winner,
		Reason: reason,
		Moves:  moves,
		Plies:  len(moves),
	}
}

var foolsMate = []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"}

// underpromotion ends with white's pawn taking the a8 rook.
var underpromotion = []string{"a2 a4", "b7 b5", "a4 b5", "a7 a6", "b5 a6", "c8 b7", "a6 b7", "g8 f6", "b7 a8"}

// TestAnalyzeGame verifies game analysis functionality
func TestAnalyzeGame(t *testing.T) {
	rec := gameOf(storage.ReasonQuit, "", "e2 e4", "e7 e5", "g1 f3", "b8 c6", "f1 b5", "a7 a6")

	analysis, err := AnalyzeGame(rec)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, analysis.Plies, 6)
	testutil.AssertEqual(t, len(analysis.Positions), 7)
	testutil.AssertEqual(t, analysis.ToMove, chess.White)
	testutil.AssertEqual(t, analysis.FinalStatus, engine.Normal)
	testutil.AssertFalse(t, analysis.RepetitionDetected())
	testutil.AssertFalse(t, analysis.FiftyMoveTriggered())
	testutil.AssertFalse(t, analysis.UnderpromotionFound())
	testutil.AssertFalse(t, analysis.HasInsufficientMaterial)

	bishop := analysis.FinalBoard.At(chess.Sq(3, 1))
	testutil.AssertEqual(t, bishop.Kind, chess.Bishop)
}

// TestAnalyzeGame_Repetition verifies repetition detection
func TestAnalyzeGame_Repetition(t *testing.T) {
	shuffle := []string{"g1 f3", "g8 f6", "f3 g1", "f6 g8"}

	tests := []struct {
		name      string
		rounds    int
		threefold bool
		fivefold  bool
	}{
		{"once", 1, false, false},
		{"twice", 2, true, false},
		{"four times", 4, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var moves []string
			for i := 0; i < tt.rounds; i++ {
				moves = append(moves, shuffle...)
			}
			analysis, err := AnalyzeGame(gameOf(storage.ReasonThreefold, "", moves...))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, analysis.HasRepetition, tt.threefold)
			testutil.AssertEqual(t, analysis.Has5FoldRepetition, tt.fivefold)
			testutil.AssertEqual(t, analysis.Positions[0], analysis.Positions[len(analysis.Positions)-1])
		})
	}
}

// TestAnalyzeGame_Underpromotion verifies underpromotion detection
func TestAnalyzeGame_Underpromotion(t *testing.T) {
	tests := []struct {
		piece string
		want  bool
	}{
		{"knight", true},
		{"rook", true},
		{"queen", false},
	}

	for _, tt := range tests {
		t.Run(tt.piece, func(t *testing.T) {
			rec := gameOf(storage.ReasonQuit, "", underpromotion...)
			rec.Promotions = map[int]string{8: tt.piece}

			analysis, err := AnalyzeGame(rec)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, analysis.UnderpromotionFound(), tt.want)
		})
	}
}

func TestAnalyzeGame_MissingPromotion(t *testing.T) {
	_, err := AnalyzeGame(gameOf(storage.ReasonQuit, "", underpromotion...))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
}

func TestAnalyzeGame_FiftyMoveRule(t *testing.T) {
	shuffle := []string{"g1 f3", "g8 f6", "f3 g1", "f6 g8"}
	var moves []string
	for len(moves) < 100 {
		moves = append(moves, shuffle...)
	}

	analysis, err := AnalyzeGame(gameOf(storage.ReasonFifty, "", moves[:99]...))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, analysis.FiftyMoveTriggered(), "99 plies")

	analysis, err = AnalyzeGame(gameOf(storage.ReasonFifty, "", moves...))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, analysis.FiftyMoveTriggered(), "100 plies")
	testutil.AssertFalse(t, analysis.Has75MoveRule)
	testutil.AssertTrue(t, ValidateGame(gameOf(storage.ReasonFifty, "", moves...)).Valid)
}

// TestValidateGame verifies move and result validation
func TestValidateGame(t *testing.T) {
	tests := []struct {
		name     string
		rec      *storage.GameRecord
		valid    bool
		errorPly int
	}{
		{"checkmate", gameOf(storage.ReasonCheckmate, "black", foolsMate...), true, 0},
		{"wrong winner", gameOf(storage.ReasonCheckmate, "white", foolsMate...), false, 0},
		{"not mate", gameOf(storage.ReasonCheckmate, "black", foolsMate[:3]...), false, 0},
		{"not stalemate", gameOf(storage.ReasonStalemate, "", foolsMate...), false, 0},
		{"no repetition", gameOf(storage.ReasonThreefold, "", "e2 e4"), false, 0},
		{"quit is always consistent", gameOf(storage.ReasonQuit, "", "e2 e4"), true, 0},
		{"illegal move", gameOf(storage.ReasonQuit, "", "e2 e4", "e7 e4"), false, 2},
		{"garbage move", gameOf(storage.ReasonQuit, "", "e2 e4", "e7 e5", "hello"), false, 3},
		{"plies mismatch", &storage.GameRecord{Moves: []string{"e2 e4"}, Plies: 3, Reason: storage.ReasonQuit}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateGame(tt.rec)
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (%s)", result.Valid, tt.valid, result.ErrorMsg)
			}
			testutil.AssertEqual(t, result.ErrorPly, tt.errorPly)
			if !tt.valid && result.ErrorMsg == "" {
				t.Error("invalid game without an error message")
			}
		})
	}
}

// TestReplayGame verifies replaying to the final position
func TestReplayGame(t *testing.T) {
	board, err := ReplayGame(gameOf(storage.ReasonCheckmate, "black", foolsMate...))
	testutil.AssertNoError(t, err)

	queen := board.At(chess.Sq(4, 7))
	testutil.AssertEqual(t, queen.Kind, chess.Queen)
	testutil.AssertEqual(t, queen.Colour, chess.Black)
	testutil.AssertTrue(t, board.Empty(chess.Sq(0, 3)))
	testutil.AssertTrue(t, engine.IsCheckmate(board, chess.White))
}
