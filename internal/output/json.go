package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/storage"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID       uint64            `json:"id"`
	Tags     map[string]string `json:"tags"`
	Moves    []JSONMove        `json:"moves,omitempty"`
	Result   string            `json:"result"`
	Reason   string            `json:"reason"`
	PlyCount int               `json:"plyCount"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Check      bool   `json:"check,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a record to JSON form, replaying it to name the
// moving and captured pieces.
func GameToJSON(rec *storage.GameRecord) (*JSONGame, error) {
	jg := &JSONGame{
		ID:       rec.ID,
		Tags:     make(map[string]string),
		Result:   ResultString(rec),
		Reason:   rec.Reason,
		PlyCount: len(rec.Moves),
	}
	for _, tag := range Tags(rec) {
		jg.Tags[tag[0]] = tag[1]
	}

	moves, err := convertMoveList(rec)
	if err != nil {
		return nil, err
	}
	jg.Moves = moves
	return jg, nil
}

// convertMoveList replays the record from the initial position.
func convertMoveList(rec *storage.GameRecord) ([]JSONMove, error) {
	board := chess.NewInitialBoard()
	result := make([]JSONMove, 0, len(rec.Moves))

	for ply, text := range rec.Moves {
		from, to, err := notation.ParseMove(text)
		if err != nil {
			return nil, &errors.MoveError{Err: err, Ply: ply + 1, Text: text}
		}
		jm, err := convertSingleMove(board, from, to, ply, rec.Promotions[ply])
		if err != nil {
			return nil, &errors.MoveError{Err: err, Ply: ply + 1, Text: text}
		}
		result = append(result, jm)
	}
	return result, nil
}

// convertSingleMove describes a move and applies it to the board.
func convertSingleMove(board *chess.Board, from, to chess.Square, ply int, promotion string) (JSONMove, error) {
	piece := board.At(from)
	if piece.Kind == chess.NoPiece {
		return JSONMove{}, errors.ErrNoPiece
	}

	jm := JSONMove{
		Color: colorName(piece.Colour),
		From:  notation.FormatSquare(from),
		To:    notation.FormatSquare(to),
		Piece: pieceTypeName(piece.Kind),
		UCI:   notation.FormatSquare(from) + notation.FormatSquare(to),
	}
	if ply%2 == 0 {
		jm.MoveNumber = ply/2 + 1
	}
	jm.Captured = getCapturedPiece(board, piece, from, to)

	outcome, err := engine.MovePiece(board, from, to)
	if err != nil {
		return JSONMove{}, err
	}
	if outcome == chess.PawnPromotion {
		kind, err := notation.ParsePromotion(promotion)
		if err != nil {
			return JSONMove{}, err
		}
		if err := engine.PromotePawn(board, kind, to); err != nil {
			return JSONMove{}, err
		}
		jm.Promotion = pieceTypeName(kind)
		jm.UCI = longAlgebraic(notation.FormatMove(chess.Move{From: from, To: to}), promotion)
	}
	jm.Check = engine.InCheck(board, piece.Colour.Opposite())
	return jm, nil
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// getCapturedPiece returns the name of the captured piece, if any.
func getCapturedPiece(board *chess.Board, piece chess.Piece, from, to chess.Square) string {
	if captured := board.At(to); captured.Kind != chess.NoPiece {
		return pieceTypeName(captured.Kind)
	}
	// A pawn changing file onto an empty square takes en passant.
	if piece.Kind == chess.Pawn && from.Col != to.Col {
		return "pawn"
	}
	return ""
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(k chess.Kind) string {
	if k == chess.NoPiece {
		return ""
	}
	return notation.PromotionName(k)
}

// OutputGamesJSON writes records as a JSON array.
func OutputGamesJSON(recs []*storage.GameRecord, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(recs))}
	for _, rec := range recs {
		jg, err := GameToJSON(rec)
		if err != nil {
			return err
		}
		out.Games = append(out.Games, jg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
