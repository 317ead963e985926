package engine

import "github.com/lgbarn/chess-go/internal/chess"

// Corner columns of the rooks used for each castling side.
const (
	kingsideRookCol  = chess.BoardSize - 1
	queensideRookCol = 0
)

// castlingMoves returns the king's castling destinations that are
// currently playable.
func castlingMoves(board *chess.Board, king chess.Piece) []chess.Square {
	if king.HasMoved {
		return nil
	}

	var moves []chess.Square
	for _, rookCol := range []int{kingsideRookCol, queensideRookCol} {
		if to, ok := castleTarget(board, king, rookCol); ok {
			moves = append(moves, to)
		}
	}
	return moves
}

// castleTarget checks one castling side and returns the king's destination.
func castleTarget(board *chess.Board, king chess.Piece, rookCol int) (chess.Square, bool) {
	from := king.Pos
	dir := sign(rookCol - from.Col)
	if dir == 0 {
		return chess.Square{}, false
	}

	rookSq := chess.Sq(from.Row, rookCol)
	rook := board.At(rookSq)
	if !rook.Is(chess.Rook, king.Colour) || rook.HasMoved {
		return chess.Square{}, false
	}

	// The king lands two files over, strictly between its square and the rook.
	to := from.Add(0, 2*dir)
	if abs(rookCol-from.Col) <= 2 {
		return chess.Square{}, false
	}

	for col := from.Col + dir; col != rookCol; col += dir {
		if board.Occupied(chess.Sq(from.Row, col)) {
			return chess.Square{}, false
		}
	}

	opponent := king.Colour.Opposite()
	for _, sq := range []chess.Square{from, from.Add(0, dir), to} {
		if IsSquareAttacked(board, sq, opponent) {
			return chess.Square{}, false
		}
	}
	return to, true
}

// castle moves the rook next to the king's destination, then the king.
func castle(board *chess.Board, from, to chess.Square) {
	dir := sign(to.Col - from.Col)
	rookCol := kingsideRookCol
	if dir < 0 {
		rookCol = queensideRookCol
	}

	rookFrom := chess.Sq(from.Row, rookCol)
	if board.At(rookFrom).Is(chess.Rook, board.At(from).Colour) {
		movePiece(board, rookFrom, to.Add(0, -dir), false)
	}
	movePiece(board, from, to, false)
}

// isCastle reports whether moving piece from -> to is a castling move.
func isCastle(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) >= 2
}

// CanCastle reports the colour's standing castling eligibility: its king
// has never moved and at least one of its rooks has never moved. Whether
// castling is playable right now is a separate question answered by
// LegalMoves.
func CanCastle(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok || board.At(kingSq).HasMoved {
		return false
	}
	for _, p := range board.Pieces(colour) {
		if p.Kind == chess.Rook && !p.HasMoved {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
