package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// MovePiece applies a move to the board and classifies it. It does not
// check legality; use ValidateMove first for untrusted input.
// A king moving two or more files castles.
func MovePiece(board *chess.Board, from, to chess.Square) (chess.Outcome, error) {
	if err := checkSquares(from, to); err != nil {
		return chess.Quiet, err
	}
	if board.Empty(from) {
		return chess.Quiet, fmt.Errorf("moving from %v: %w", from, errors.ErrNoPiece)
	}
	return movePiece(board, from, to, true), nil
}

// movePiece relocates the piece on from. With allowCastle unset a king
// move is always a plain relocation, which stops castle() from recursing.
func movePiece(board *chess.Board, from, to chess.Square, allowCastle bool) chess.Outcome {
	piece := board.At(from)

	if allowCastle && isCastle(piece, from, to) {
		castle(board, from, to)
		return chess.Quiet
	}

	captured := board.Occupied(to)

	board.Clear(from)
	if piece.TracksMoves() {
		piece.HasMoved = true
	}
	board.Set(to, piece)

	if piece.Kind == chess.Pawn {
		// En passant capture: the victim is not on the destination square.
		ep := board.EnPassant[piece.Colour]
		if ep.Active && ep.Square == to {
			board.Clear(ep.Victim)
			captured = true
		}
	}

	// Any move by this colour forfeits its pending en passant capture.
	board.ClearEnPassant(piece.Colour)

	if piece.Kind == chess.Pawn && abs(to.Row-from.Row) == 2 {
		board.EnPassant[piece.Colour.Opposite()] = chess.EnPassantTarget{
			Active: true,
			Square: chess.Sq((from.Row+to.Row)/2, from.Col),
			Victim: to,
		}
	}

	switch {
	case piece.Kind == chess.Pawn && to.Row == piece.Colour.PromotionRow():
		return chess.PawnPromotion
	case captured:
		return chess.Capture
	case piece.Kind == chess.Pawn:
		return chess.PawnMove
	}
	return chess.Quiet
}

// PromotePawn replaces the pawn on sq with a piece of the given kind.
func PromotePawn(board *chess.Board, kind chess.Kind, sq chess.Square) error {
	if !sq.Valid() {
		return fmt.Errorf("promoting on %v: %w", sq, errors.ErrOutOfBounds)
	}
	if !kind.Promotable() {
		return fmt.Errorf("promoting to %v: %w", kind, errors.ErrInvalidPromotion)
	}

	pawn := board.At(sq)
	if pawn.Kind != chess.Pawn || sq.Row != pawn.Colour.PromotionRow() {
		return fmt.Errorf("no pawn to promote on %v: %w", sq, errors.ErrInvalidPromotion)
	}

	promoted := chess.NewPiece(kind, pawn.Colour, sq)
	// A promoted rook never grants castling rights.
	promoted.HasMoved = kind == chess.Rook
	board.Set(sq, promoted)
	return nil
}

// checkSquares validates caller-supplied squares.
func checkSquares(squares ...chess.Square) error {
	for _, sq := range squares {
		if !sq.Valid() {
			return fmt.Errorf("square %v: %w", sq, errors.ErrOutOfBounds)
		}
	}
	return nil
}
