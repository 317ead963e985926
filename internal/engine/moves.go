// Package engine provides chess move generation, validation and board
// manipulation on top of the chess package's grid.
package engine

import (
	"slices"

	"github.com/lgbarn/chess-go/internal/chess"
)

// direction is a (row, col) step.
type direction [2]int

var (
	knightOffsets = []direction{{1, 2}, {2, 1}, {-1, 2}, {2, -1}, {1, -2}, {-2, 1}, {-1, -2}, {-2, -1}}
	kingOffsets   = []direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

	orthogonalDirs = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs   = []direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	allDirs        = append(slices.Clone(orthogonalDirs), diagonalDirs...)
)

// slidingDirs returns the direction vectors of a sliding piece kind.
func slidingDirs(kind chess.Kind) []direction {
	switch kind {
	case chess.Bishop:
		return diagonalDirs
	case chess.Rook:
		return orthogonalDirs
	case chess.Queen:
		return allDirs
	}
	return nil
}

// RawMoves returns the pseudo-legal destinations of the piece on sq,
// ignoring whether the mover's own king would be left in check.
// An empty square yields no moves.
func RawMoves(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.At(sq)

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, piece)
	case chess.Knight:
		return stepMoves(board, piece, knightOffsets)
	case chess.Bishop, chess.Rook, chess.Queen:
		return slideMoves(board, piece, slidingDirs(piece.Kind))
	case chess.King:
		return append(stepMoves(board, piece, kingOffsets), castlingMoves(board, piece)...)
	}
	return nil
}

// AttackSpaces returns the squares the piece on sq threatens for check
// detection. Pawn pushes and castling destinations are never attacks.
func AttackSpaces(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.At(sq)

	switch piece.Kind {
	case chess.Pawn:
		return pawnAttacks(piece)
	case chess.Knight:
		return stepMoves(board, piece, knightOffsets)
	case chess.Bishop, chess.Rook, chess.Queen:
		return slideMoves(board, piece, slidingDirs(piece.Kind))
	case chess.King:
		return stepMoves(board, piece, kingOffsets)
	}
	return nil
}

// stepMoves returns the in-bounds offset squares not held by a friendly piece.
func stepMoves(board *chess.Board, piece chess.Piece, offsets []direction) []chess.Square {
	var moves []chess.Square
	for _, off := range offsets {
		to := piece.Pos.Add(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if colour, ok := board.ColourAt(to); ok && colour == piece.Colour {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// slideMoves walks each direction until the edge or a blocker. An enemy
// blocker is included, a friendly one is not.
func slideMoves(board *chess.Board, piece chess.Piece, dirs []direction) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := piece.Pos.Add(dir[0], dir[1])
		for to.Valid() {
			if colour, ok := board.ColourAt(to); ok {
				if colour != piece.Colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Add(dir[0], dir[1])
		}
	}
	return moves
}
