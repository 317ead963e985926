package engine

import "github.com/lgbarn/chess-go/internal/chess"

// Status classifies a position for the side about to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Normal"
}

// IsCheckmate returns true if the colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return InCheck(board, colour) && !HasLegalMove(board, colour)
}

// IsStalemate returns true if the colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !InCheck(board, colour) && !HasLegalMove(board, colour)
}

// PositionStatus returns the status of the position for the colour. The
// four values are mutually exclusive.
func PositionStatus(board *chess.Board, colour chess.Colour) Status {
	inCheck := InCheck(board, colour)
	hasMove := HasLegalMove(board, colour)
	switch {
	case inCheck && !hasMove:
		return Checkmate
	case !hasMove:
		return Stalemate
	case inCheck:
		return Check
	}
	return Normal
}

// MoveCheckmatesOpponent plays the move on a clone and reports whether the
// opponent of colour is then checkmated.
func MoveCheckmatesOpponent(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	clone := board.Clone()
	movePiece(clone, move.From, move.To, true)
	return IsCheckmate(clone, colour.Opposite())
}

// MoveStalematesOpponent plays the move on a clone and reports whether the
// opponent of colour is then stalemated.
func MoveStalematesOpponent(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	clone := board.Clone()
	movePiece(clone, move.From, move.To, true)
	return IsStalemate(clone, colour.Opposite())
}
