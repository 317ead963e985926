package chess

import (
	"fmt"
	"iter"

	"github.com/lgbarn/chess-go/internal/errors"
)

// EnPassantTarget records a pending en passant capture for one colour.
type EnPassantTarget struct {
	Active bool

	// Square is the square skipped by the double advance; the capturing
	// pawn lands here.
	Square Square

	// Victim is the square of the pawn that would be removed.
	Victim Square
}

// Board represents the grid and the special-rule state that is not
// derived from piece flags.
type Board struct {
	// The board squares in row-major order; see Square.Index.
	grid [BoardSize * BoardSize]Piece

	// EnPassant is indexed by the colour that may capture.
	EnPassant [NumColours]EnPassantTarget
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		for _, colour := range []Colour{White, Black} {
			b.Place(NewPiece(backRank[col], colour, Sq(colour.BackRow(), col)))
			b.Place(NewPiece(Pawn, colour, Sq(colour.PawnRow(), col)))
		}
	}
}

// mustBeValid panics when a square is off the board.
func mustBeValid(sq Square) {
	if !sq.Valid() {
		panic(fmt.Errorf("square %v: %w", sq, errors.ErrOutOfBounds))
	}
}

// At returns the piece at the given square. The zero Piece means empty.
func (b *Board) At(sq Square) Piece {
	mustBeValid(sq)
	return b.grid[sq.Index()]
}

// Set places a piece at the given square and updates its stored position.
func (b *Board) Set(sq Square, p Piece) {
	mustBeValid(sq)
	if !p.IsEmpty() {
		p.Pos = sq
	}
	b.grid[sq.Index()] = p
}

// Place puts a piece on the square recorded in its Pos field.
func (b *Board) Place(p Piece) {
	b.Set(p.Pos, p)
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Occupied reports whether a piece stands on the square.
func (b *Board) Occupied(sq Square) bool {
	return !b.At(sq).IsEmpty()
}

// Empty reports whether the square is unoccupied.
func (b *Board) Empty(sq Square) bool {
	return !b.Occupied(sq)
}

// ColourAt returns the colour of the piece on the square. The boolean is
// false for an empty square.
func (b *Board) ColourAt(sq Square) (Colour, bool) {
	p := b.At(sq)
	if p.IsEmpty() {
		return White, false
	}
	return p.Colour, true
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Squares iterates over all 64 squares in row-major order.
func (b *Board) Squares() iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for i, p := range b.grid {
			if !yield(SquareAt(i), p) {
				return
			}
		}
	}
}

// Pieces returns every piece of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.grid {
		if !p.IsEmpty() && p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for i, p := range b.grid {
		if p.Is(King, colour) {
			return SquareAt(i), true
		}
	}
	return Square{}, false
}

// ClearEnPassant forgets any pending en passant capture for the colour.
func (b *Board) ClearEnPassant(colour Colour) {
	b.EnPassant[colour] = EnPassantTarget{}
}
