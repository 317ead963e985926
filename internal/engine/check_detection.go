package engine

import (
	"slices"

	"github.com/lgbarn/chess-go/internal/chess"
)

// InCheck returns true if the given colour's king is attacked. A board
// without that king is never in check.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour has sq among
// its attack spaces.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, p := range board.Pieces(byColour) {
		if slices.Contains(AttackSpaces(board, p.Pos), sq) {
			return true
		}
	}
	return false
}
