package player

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/notation"
)

// Human is a player who answers through a Prompter.
type Human struct {
	colour   chess.Colour
	prompter Prompter
}

// NewHuman creates a human player for the colour.
func NewHuman(colour chess.Colour, prompter Prompter) *Human {
	return &Human{colour: colour, prompter: prompter}
}

// Colour returns the side the player plays.
func (h *Human) Colour() chess.Colour {
	return h.colour
}

// name is the colour as it reads mid-sentence.
func (h *Human) name() string {
	return cases.Lower(language.English).String(h.colour.String())
}

// NotifyColour tells the player their side.
func (h *Human) NotifyColour() {
	h.prompter.Tell(fmt.Sprintf("You are %s.", h.name()))
}

// PlayTurn prompts for a move.
func (h *Human) PlayTurn(_ context.Context, _ *chess.Board) (string, error) {
	return h.prompter.Prompt(fmt.Sprintf(
		"It is %s's turn. Please select a move (e.g. e2 e4) or enter %s to quit:", h.name(), notation.QuitCommand))
}

// RequestPromotion prompts for the promotion piece.
func (h *Human) RequestPromotion(_ *chess.Board) (string, error) {
	h.prompter.Tell("Congratulations! You get to promote a pawn!")
	return h.prompter.Prompt("Choose bishop, knight, queen, or rook.")
}

// RequestDraw asks whether to claim a draw.
func (h *Human) RequestDraw(reason DrawReason) (bool, error) {
	h.prompter.Tell(fmt.Sprintf("%s may now request a draw thanks to the %s.", h.colour, reason))
	answer, err := h.prompter.Prompt("Enter 'y' for draw, or any other key to continue playing.")
	if err != nil {
		return false, err
	}
	return notation.IsYes(answer), nil
}

// ConfirmQuit asks the player to confirm leaving the game.
func (h *Human) ConfirmQuit() (string, error) {
	return h.prompter.Prompt("Are you sure you want to quit? Enter y to confirm, or enter a valid move to continue playing:")
}

// Reject shows the player why their answer was refused.
func (h *Human) Reject(err error) {
	h.prompter.Tell(errors.UserMessage(err))
}
