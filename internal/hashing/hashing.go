// Package hashing defines when two positions are the same for repetition
// purposes and hashes positions consistently with that equality.
//
// Castling flags and en passant targets are only significant when they can
// matter: each colour's castling eligibility always counts, its king and
// rook move flags count only while it may still castle, and an en passant
// target counts only while a pawn of the capturing colour attacks it.
package hashing

import (
	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
)

// cell is the significant content of one square.
type cell struct {
	kind   chess.Kind
	colour chess.Colour
	moved  bool
}

// enPassant is the significant en passant state of one colour.
type enPassant struct {
	active bool
	square chess.Square
}

// Fingerprint is the equality-relevant summary of a board. Two fingerprints
// compare equal with == exactly when the positions are the same.
type Fingerprint struct {
	cells     [chess.BoardSize * chess.BoardSize]cell
	canCastle [chess.NumColours]bool
	enPassant [chess.NumColours]enPassant
}

// NewFingerprint builds the fingerprint of a board.
func NewFingerprint(board *chess.Board) Fingerprint {
	var fp Fingerprint
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		fp.canCastle[colour] = engine.CanCastle(board, colour)
		if engine.EnPassantAvailable(board, colour) {
			fp.enPassant[colour] = enPassant{active: true, square: board.EnPassant[colour].Square}
		}
	}

	for sq, p := range board.Squares() {
		if p.IsEmpty() {
			continue
		}
		c := cell{kind: p.Kind, colour: p.Colour}
		if p.TracksMoves() && fp.canCastle[p.Colour] {
			c.moved = p.HasMoved
		}
		fp.cells[sq.Index()] = c
	}
	return fp
}

// Equal reports whether two boards hold the same position.
func Equal(a, b *chess.Board) bool {
	return NewFingerprint(a) == NewFingerprint(b)
}

// Hash returns a 64-bit hash of the board consistent with Equal.
func Hash(board *chess.Board) uint64 {
	return NewFingerprint(board).Hash()
}

// Hash returns a 64-bit hash of the fingerprint.
func (fp Fingerprint) Hash() uint64 {
	return xxhash.Sum64(fp.encode())
}

// encode writes one byte per square followed by three bytes per colour:
// castling eligibility and the en passant target.
func (fp Fingerprint) encode() []byte {
	buf := make([]byte, 0, len(fp.cells)+3*chess.NumColours)
	for _, c := range fp.cells {
		b := byte(c.kind) | byte(c.colour)<<3
		if c.moved {
			b |= 1 << 4
		}
		buf = append(buf, b)
	}
	for colour, ep := range fp.enPassant {
		var castle byte
		if fp.canCastle[colour] {
			castle = 1
		}
		buf = append(buf, castle)
		if !ep.active {
			buf = append(buf, 0, 0)
			continue
		}
		buf = append(buf, 1, byte(ep.square.Index()))
	}
	return buf
}
