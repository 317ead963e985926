package player

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func newHuman(colour chess.Colour, input string) (*Human, *bytes.Buffer) {
	var out bytes.Buffer
	return NewHuman(colour, NewConsole(strings.NewReader(input), &out)), &out
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  e2 e4  \nq\n"), &out)

	got, err := c.Prompt("Your move?")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "e2 e4")

	got, err = c.Prompt("Again?")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "q")

	_, err = c.Prompt("More?")
	testutil.AssertErrorIs(t, err, errors.ErrQuit, "closed input")

	c.Tell("Bye.")
	testutil.AssertEqual(t, out.String(), "Your move?\nAgain?\nMore?\nBye.\n")
}

func TestHumanPrompts(t *testing.T) {
	t.Run("play turn", func(t *testing.T) {
		h, out := newHuman(chess.White, "e2 e4\n")
		got, err := h.PlayTurn(context.Background(), chess.NewInitialBoard())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, "e2 e4")
		testutil.AssertContains(t, out.String(), "It is white's turn.")
	})

	t.Run("notify colour", func(t *testing.T) {
		h, out := newHuman(chess.Black, "")
		h.NotifyColour()
		testutil.AssertEqual(t, out.String(), "You are black.\n")
		testutil.AssertEqual(t, h.Colour(), chess.Black)
	})

	t.Run("promotion", func(t *testing.T) {
		h, out := newHuman(chess.White, "knight\n")
		got, err := h.RequestPromotion(chess.NewBoard())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, "knight")
		testutil.AssertContains(t, out.String(), "Choose bishop, knight, queen, or rook.")
	})

	t.Run("quit confirmation", func(t *testing.T) {
		h, out := newHuman(chess.White, "y\n")
		got, err := h.ConfirmQuit()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, "y")
		testutil.AssertContains(t, out.String(), "Are you sure you want to quit?")
	})

	t.Run("reject", func(t *testing.T) {
		h, out := newHuman(chess.White, "")
		h.Reject(errors.Wrap(errors.ErrSelfCheck, "e1 e2"))
		testutil.AssertEqual(t, out.String(), "That move would leave your king in check.\n")
	})
}

func TestHumanRequestDraw(t *testing.T) {
	tests := []struct {
		name   string
		colour chess.Colour
		reason DrawReason
		input  string
		want   bool
		prompt string
	}{
		{"fifty accepted", chess.White, FiftyMoveRule, "y\n", true, "White may now request a draw thanks to the fifty move rule."},
		{"fifty declined", chess.White, FiftyMoveRule, "n\n", false, "fifty move rule"},
		{"repetition accepted", chess.Black, ThreefoldRepetition, "Yes\n", true, "Black may now request a draw thanks to the three repeat rule."},
		{"empty declines", chess.Black, ThreefoldRepetition, "\n", false, "three repeat rule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, out := newHuman(tt.colour, tt.input)
			got, err := h.RequestDraw(tt.reason)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertContains(t, out.String(), tt.prompt)
		})
	}

	t.Run("closed input", func(t *testing.T) {
		h, _ := newHuman(chess.White, "")
		_, err := h.RequestDraw(FiftyMoveRule)
		testutil.AssertErrorIs(t, err, errors.ErrQuit)
	})
}
