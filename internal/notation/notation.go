// Package notation converts between board squares and the coordinate text
// players type, such as "e2 e4".
package notation

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// QuitCommand is the input that asks to leave the game.
const QuitCommand = "q"

// ParseSquare parses a square like "e4". Files run a-h from column 0 and
// rank 8 is row 0.
func ParseSquare(s string) (chess.Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return chess.Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidInput)
	}

	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidInput)
	}
	return chess.Sq(int('8'-rank), int(file-'a')), nil
}

// ParseMove parses two squares separated by whitespace or a comma.
func ParseMove(s string) (from, to chess.Square, err error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return from, to, fmt.Errorf("move %q: %w", strings.TrimSpace(s), errors.ErrInvalidInput)
	}

	if from, err = ParseSquare(fields[0]); err != nil {
		return from, to, err
	}
	if to, err = ParseSquare(fields[1]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// answer case-folds typed input so "QUEEN", "Queen" and "queen" compare
// equal. A Caser keeps state, so each call gets its own.
func answer(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// IsQuit reports whether the input asks to quit.
func IsQuit(s string) bool {
	return answer(s) == QuitCommand
}

// IsYes reports whether the input starts with y or Y.
func IsYes(s string) bool {
	return strings.HasPrefix(answer(s), "y")
}

// FormatSquare returns the coordinate name of a square, or "??" when it
// is off the board.
func FormatSquare(sq chess.Square) string {
	if !sq.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + sq.Col), byte('8' - sq.Row)})
}

// FormatMove returns the move as "e2 e4".
func FormatMove(m chess.Move) string {
	return FormatSquare(m.From) + " " + FormatSquare(m.To)
}

// promotionNames maps accepted promotion words to kinds.
var promotionNames = map[string]chess.Kind{
	"bishop": chess.Bishop,
	"knight": chess.Knight,
	"queen":  chess.Queen,
	"rook":   chess.Rook,
	"b":      chess.Bishop,
	"n":      chess.Knight,
	"q":      chess.Queen,
	"r":      chess.Rook,
}

// ParsePromotion parses the piece a player chose for a promoting pawn.
func ParsePromotion(s string) (chess.Kind, error) {
	kind, ok := promotionNames[answer(s)]
	if !ok {
		return chess.NoPiece, fmt.Errorf("promotion %q: %w", strings.TrimSpace(s), errors.ErrInvalidPromotion)
	}
	return kind, nil
}

// PromotionName returns the word ParsePromotion accepts for a kind.
func PromotionName(kind chess.Kind) string {
	return strings.ToLower(kind.String())
}

// ReadMoves reads one move per line, skipping blank lines and lines
// starting with '#'. Each move is checked with ParseMove.
func ReadMoves(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if _, _, err := ParseMove(text); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		moves = append(moves, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading moves")
	}
	return moves, nil
}

// SplitMoves turns "e2e4 e7e5" or "e2 e4, e7 e5" into moves of two squares.
// A trailing unpaired square is kept so that parsing reports it.
func SplitMoves(s string) []string {
	var squares []string
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\t'
	}) {
		for len(field) > 2 {
			squares = append(squares, field[:2])
			field = field[2:]
		}
		squares = append(squares, field)
	}

	var moves []string
	for i := 0; i < len(squares); i += 2 {
		if i+1 == len(squares) {
			moves = append(moves, squares[i])
			break
		}
		moves = append(moves, squares[i]+" "+squares[i+1])
	}
	return moves
}
