package testutil

import "github.com/lgbarn/chess-go/internal/chess"

// W returns an unmoved white piece at (row, col).
func W(kind chess.Kind, row, col int) chess.Piece {
	return chess.NewPiece(kind, chess.White, chess.Sq(row, col))
}

// B returns an unmoved black piece at (row, col).
func B(kind chess.Kind, row, col int) chess.Piece {
	return chess.NewPiece(kind, chess.Black, chess.Sq(row, col))
}

// BoardWith builds an otherwise empty board holding the given pieces.
// Test positions need not be reachable from the initial position.
func BoardWith(pieces ...chess.Piece) *chess.Board {
	b := chess.NewBoard()
	for _, p := range pieces {
		b.Place(p)
	}
	return b
}

// Moves builds a move list from flat (fromRow, fromCol, toRow, toCol) quads.
func Moves(coords ...[4]int) []chess.Move {
	moves := make([]chess.Move, 0, len(coords))
	for _, c := range coords {
		moves = append(moves, chess.Move{From: chess.Sq(c[0], c[1]), To: chess.Sq(c[2], c[3])})
	}
	return moves
}

// MoveLess orders moves for AssertSameElements.
func MoveLess(a, b chess.Move) bool {
	return a.Less(b)
}
