package engine

import "github.com/lgbarn/chess-go/internal/chess"

// pawnAttacks returns the in-bounds forward diagonals of a pawn.
func pawnAttacks(pawn chess.Piece) []chess.Square {
	var attacks []chess.Square
	dir := pawn.Colour.Forward()
	for _, dc := range []int{-1, 1} {
		to := pawn.Pos.Add(dir, dc)
		if to.Valid() {
			attacks = append(attacks, to)
		}
	}
	return attacks
}

// pawnMoves returns forward pushes, captures and an en passant capture.
func pawnMoves(board *chess.Board, pawn chess.Piece) []chess.Square {
	var moves []chess.Square
	dir := pawn.Colour.Forward()

	// Forward pushes stop at the first occupied square.
	steps := 1
	if pawn.Pos.Row == pawn.Colour.PawnRow() {
		steps = 2
	}
	to := pawn.Pos
	for i := 0; i < steps; i++ {
		to = to.Add(dir, 0)
		if !to.Valid() || board.Occupied(to) {
			break
		}
		moves = append(moves, to)
	}

	ep := board.EnPassant[pawn.Colour]
	for _, to := range pawnAttacks(pawn) {
		if colour, ok := board.ColourAt(to); ok {
			if colour != pawn.Colour {
				moves = append(moves, to)
			}
			continue
		}
		if ep.Active && ep.Square == to {
			moves = append(moves, to)
		}
	}
	return moves
}

// EnPassantAvailable reports whether the colour has a pending en passant
// target that one of its pawns actually attacks.
func EnPassantAvailable(board *chess.Board, colour chess.Colour) bool {
	ep := board.EnPassant[colour]
	if !ep.Active {
		return false
	}
	for _, dc := range []int{-1, 1} {
		from := ep.Square.Add(-colour.Forward(), dc)
		if from.Valid() && board.At(from).Is(chess.Pawn, colour) {
			return true
		}
	}
	return false
}
