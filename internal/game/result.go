package game

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/storage"
)

// Reason is why a game ended.
type Reason int

const (
	// Unfinished is the zero Reason, held by a Result of a game that did
	// not end.
	Unfinished Reason = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
	ThreefoldDraw
	Quit
)

// String returns the reason as stored with the game record.
func (r Reason) String() string {
	switch r {
	case Unfinished:
		return "unfinished"
	case Checkmate:
		return storage.ReasonCheckmate
	case Stalemate:
		return storage.ReasonStalemate
	case FiftyMoveDraw:
		return storage.ReasonFifty
	case ThreefoldDraw:
		return storage.ReasonThreefold
	case Quit:
		return storage.ReasonQuit
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Result describes a finished game.
type Result struct {
	Winner   chess.Colour // Meaningful only when Decisive
	Decisive bool
	Reason   Reason
	Quitter  chess.Colour // Meaningful only when Reason is Quit

	Plies int
	Moves []string // "e2 e4" per ply

	// Promotions maps a ply index in Moves to the chosen piece name.
	Promotions map[int]string
}

// String returns the sentence announced at the end of the game.
func (r Result) String() string {
	switch r.Reason {
	case Unfinished:
		return "The game did not finish."
	case Checkmate:
		return fmt.Sprintf("Checkmate! %s wins.", r.Winner)
	case Stalemate:
		return "Stalemate. The game is a draw."
	case FiftyMoveDraw, ThreefoldDraw:
		return fmt.Sprintf("Draw by the %s.", r.Reason)
	case Quit:
		return fmt.Sprintf("%s quit the game.", r.Quitter)
	}
	return r.Reason.String()
}

// winnerName returns the lowercase winner, or "" for no winner.
func (r Result) winnerName() string {
	if !r.Decisive {
		return ""
	}
	if r.Winner == chess.White {
		return "white"
	}
	return "black"
}
