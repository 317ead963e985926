package engine

import "github.com/lgbarn/chess-go/internal/chess"

// HasInsufficientMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [chess.NumColours][]chess.Piece

	for _, p := range board.Squares() {
		switch p.Kind {
		case chess.NoPiece, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		minors[p.Colour] = append(minors[p.Colour], p)
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		return true // A lone bishop or knight
	case len(white) == 1 && len(black) == 1:
		return white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop &&
			isLightSquare(white[0].Pos) == isLightSquare(black[0].Pos)
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 (row 0, col 0) is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
