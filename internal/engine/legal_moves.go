package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// LegalMoves returns every move of the given colour that does not leave
// its own king in check, ordered by origin then destination.
//
// Each candidate is played on a clone of the board. This one test covers
// pins, discovered checks and moving into check.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, p := range board.Pieces(colour) {
		for _, to := range RawMoves(board, p.Pos) {
			if tryMove(board, p.Pos, to, colour) {
				moves = append(moves, chess.Move{From: p.Pos, To: to})
			}
		}
	}
	slices.SortFunc(moves, func(a, b chess.Move) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return moves
}

// HasLegalMove returns true if the given colour has at least one legal move.
func HasLegalMove(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		for _, to := range RawMoves(board, p.Pos) {
			if tryMove(board, p.Pos, to, colour) {
				return true
			}
		}
	}
	return false
}

// MoveLegal reports whether to is a pseudo-legal destination of the piece
// on from. It says nothing about leaving the king in check.
func MoveLegal(board *chess.Board, from, to chess.Square) bool {
	if checkSquares(from, to) != nil || board.Empty(from) {
		return false
	}
	return slices.Contains(RawMoves(board, from), to)
}

// LeavesKingInCheck plays the move on a clone and reports whether the
// colour's king is then in check.
func LeavesKingInCheck(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	return !tryMove(board, from, to, colour)
}

// ValidateMove checks a move requested by the given colour and returns a
// wrapped sentinel describing the first rule it breaks.
func ValidateMove(board *chess.Board, from, to chess.Square, colour chess.Colour) error {
	if err := checkSquares(from, to); err != nil {
		return err
	}

	owner, ok := board.ColourAt(from)
	if !ok {
		return fmt.Errorf("%v: %w", from, errors.ErrNoPiece)
	}
	if owner != colour {
		return fmt.Errorf("%v holds a %v piece: %w", from, owner, errors.ErrPieceNotOwned)
	}
	if !MoveLegal(board, from, to) {
		return fmt.Errorf("%v -> %v: %w", from, to, errors.ErrIllegalMove)
	}
	if LeavesKingInCheck(board, from, to, colour) {
		return fmt.Errorf("%v -> %v: %w", from, to, errors.ErrSelfCheck)
	}
	return nil
}

// tryMove makes a move on a copied board and checks it leaves the king safe.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Clone()
	movePiece(testBoard, from, to, true)
	return !InCheck(testBoard, colour)
}
