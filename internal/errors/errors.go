// Package errors provides sentinel errors and error types for the chess engine
// and its consumers. It defines common failure conditions and structured error
// types that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a square outside the 8x8 board. Inside the
	// board it is a programming error.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove indicates a destination the piece cannot reach.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSelfCheck indicates a pseudo-legal move that leaves the mover's
	// own king in check.
	ErrSelfCheck = errors.New("move leaves king in check")

	// ErrInvalidPromotion indicates a promotion target other than a bishop,
	// knight, queen or rook, or a square without a promotable pawn.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrNoPiece indicates an empty origin square.
	ErrNoPiece = errors.New("no piece on square")

	// ErrPieceNotOwned indicates an origin square holding an opponent's piece.
	ErrPieceNotOwned = errors.New("piece not owned by player")

	// ErrInvalidInput indicates move text that could not be parsed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQuit indicates a player asked to leave the game.
	ErrQuit = errors.New("player quit")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRecordNotFound indicates a missing stored game record.
	ErrRecordNotFound = errors.New("game record not found")
)

// MoveError wraps errors with move context: the ply, the squares involved
// and the colour that attempted the move. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Ply    int    // 1-based ply number (0 if not applicable)
	Colour string // Side that attempted the move (if known)
	Text   string // The move text as entered (if applicable)
	From   string // Origin square (if known)
	To     string // Destination square (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}

	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Text))
	} else if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s -> %s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// UserMessage returns the sentence shown to a player for a recoverable error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrOutOfBounds):
		return "Please enter your move in this format: e2 e4 (files a-h, ranks 1-8)"
	case errors.Is(err, ErrNoPiece):
		return "There is no piece at that square."
	case errors.Is(err, ErrPieceNotOwned):
		return "You do not own a piece at that square."
	case errors.Is(err, ErrSelfCheck):
		return "That move would leave your king in check."
	case errors.Is(err, ErrInvalidPromotion):
		return "You can only promote to a bishop, knight, queen, or rook."
	case errors.Is(err, ErrIllegalMove):
		return "That move is not legal."
	}
	return err.Error()
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
