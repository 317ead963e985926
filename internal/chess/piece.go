package chess

// Piece is a chess piece held by value in a board slot.
type Piece struct {
	Kind   Kind
	Colour Colour
	Pos    Square

	// HasMoved is tracked for rooks and kings only; it decides
	// castling eligibility.
	HasMoved bool
}

// NewPiece creates an unmoved piece at the given square.
func NewPiece(kind Kind, colour Colour, pos Square) Piece {
	return Piece{Kind: kind, Colour: colour, Pos: pos}
}

// IsEmpty reports whether the slot holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is reports whether the piece has the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// TracksMoves reports whether HasMoved is meaningful for this kind.
func (p Piece) TracksMoves() bool {
	return p.Kind == Rook || p.Kind == King
}

// Symbol returns the unicode glyph used for display.
func (p Piece) Symbol() string {
	white := []string{"_", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{"_", "♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Kind < NoPiece || p.Kind > King {
		return "?"
	}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}
