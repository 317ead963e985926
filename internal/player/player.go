// Package player defines the participants of a game session: humans who
// answer prompts and a computer that picks moves by a fixed ranking.
package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// DrawReason names the rule that allows a draw claim.
type DrawReason int

const (
	FiftyMoveRule DrawReason = iota
	ThreefoldRepetition
)

// String returns the phrase used in prompts.
func (r DrawReason) String() string {
	if r == FiftyMoveRule {
		return "fifty move rule"
	}
	return "three repeat rule"
}

// Player is one side of a game. Answers are raw text; the session parses
// and validates them.
type Player interface {
	Colour() chess.Colour

	// NotifyColour tells the player which side they play.
	NotifyColour()

	// PlayTurn returns the move text for the player's turn, "q" to quit.
	PlayTurn(ctx context.Context, board *chess.Board) (string, error)

	// RequestPromotion returns the piece name for a promoting pawn.
	RequestPromotion(board *chess.Board) (string, error)

	// RequestDraw asks whether to claim a draw.
	RequestDraw(reason DrawReason) (bool, error)

	// ConfirmQuit returns "y" to quit or a move to continue playing.
	ConfirmQuit() (string, error)

	// Reject reports why the last answer was refused.
	Reject(err error)
}

// Prompter is the text channel between a human and the game.
type Prompter interface {
	// Prompt shows the question and returns one line of input.
	Prompt(question string) (string, error)

	// Tell shows a message that needs no answer.
	Tell(message string)
}

// Console is a Prompter over a reader and a writer, usually stdin and stdout.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole creates a console prompter.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(in), out: out}
}

// Prompt writes the question and reads a line. Closed input reads as a
// request to quit.
func (c *Console) Prompt(question string) (string, error) {
	fmt.Fprintln(c.out, question)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", errors.Wrap(errors.ErrQuit, "input closed")
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// Tell writes the message on its own line.
func (c *Console) Tell(message string) {
	fmt.Fprintln(c.out, message)
}
