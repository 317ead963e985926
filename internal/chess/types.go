// Package chess provides core chess types and the board grid.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours, used to size per-colour arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour advances by.
// White starts on row 6 and moves towards row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// BackRow returns the row holding this colour's king and rooks at the start.
func (c Colour) BackRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the starting row of this colour's pawns.
func (c Colour) PawnRow() int {
	return c.BackRow() + c.Forward()
}

// PromotionRow returns the farthest row for this colour's pawns.
func (c Colour) PromotionRow() int {
	return c.Opposite().BackRow()
}

// Kind represents a chess piece type. The zero value marks an empty slot.
type Kind int

const (
	NoPiece Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotable reports whether a pawn may be promoted to this kind.
func (k Kind) Promotable() bool {
	switch k {
	case Bishop, Knight, Queen, Rook:
		return true
	}
	return false
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square addresses one cell of the board. Row 0 is rank 8 and
// column 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square offset by the given row and column deltas.
func (s Square) Add(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Index returns the grid slot of a valid square.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// Less orders squares row-major.
func (s Square) Less(o Square) bool {
	if s.Row != o.Row {
		return s.Row < o.Row
	}
	return s.Col < o.Col
}

// String returns the square as [row, col].
func (s Square) String() string {
	return fmt.Sprintf("[%d, %d]", s.Row, s.Col)
}

// SquareAt returns the square for a grid slot.
func SquareAt(index int) Square {
	return Square{Row: index / BoardSize, Col: index % BoardSize}
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// Less orders moves by origin, then destination.
func (m Move) Less(o Move) bool {
	if m.From != o.From {
		return m.From.Less(o.From)
	}
	return m.To.Less(o.To)
}

// Outcome classifies an applied move. It drives the fifty-move counter.
type Outcome int

const (
	Quiet Outcome = iota
	PawnMove
	Capture
	PawnPromotion
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case PawnMove:
		return "PawnMove"
	case Capture:
		return "Capture"
	case PawnPromotion:
		return "PawnPromotion"
	}
	return "Quiet"
}

// ResetsFiftyMoveCount reports whether the outcome restarts the fifty-move count.
func (o Outcome) ResetsFiftyMoveCount() bool {
	return o != Quiet
}
