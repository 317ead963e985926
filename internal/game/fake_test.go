package game

import (
	"context"
	"io"
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/player"
)

// fakePlayer answers from canned lists. Running out of turns reads as
// closed input.
type fakePlayer struct {
	colour     chess.Colour
	turns      []string
	promotions []string
	draws      []bool
	confirms   []string

	notified   bool
	rejected   []error
	drawOffers []player.DrawReason
}

func newFake(colour chess.Colour, turns ...string) *fakePlayer {
	return &fakePlayer{colour: colour, turns: turns}
}

func (f *fakePlayer) Colour() chess.Colour { return f.colour }

func (f *fakePlayer) NotifyColour() { f.notified = true }

func (f *fakePlayer) PlayTurn(_ context.Context, _ *chess.Board) (string, error) {
	if len(f.turns) == 0 {
		return "", errors.Wrap(errors.ErrQuit, "out of turns")
	}
	next := f.turns[0]
	f.turns = f.turns[1:]
	return next, nil
}

func (f *fakePlayer) RequestPromotion(_ *chess.Board) (string, error) {
	if len(f.promotions) == 0 {
		return "queen", nil
	}
	next := f.promotions[0]
	f.promotions = f.promotions[1:]
	return next, nil
}

func (f *fakePlayer) RequestDraw(reason player.DrawReason) (bool, error) {
	f.drawOffers = append(f.drawOffers, reason)
	if len(f.draws) == 0 {
		return false, nil
	}
	next := f.draws[0]
	f.draws = f.draws[1:]
	return next, nil
}

func (f *fakePlayer) ConfirmQuit() (string, error) {
	if len(f.confirms) == 0 {
		return "y", nil
	}
	next := f.confirms[0]
	f.confirms = f.confirms[1:]
	return next, nil
}

func (f *fakePlayer) Reject(err error) { f.rejected = append(f.rejected, err) }

// quitAtPromotion leaves the game when asked to choose a piece.
type quitAtPromotion struct {
	*fakePlayer
}

func (q *quitAtPromotion) RequestPromotion(_ *chess.Board) (string, error) {
	return "", errors.Wrap(errors.ErrQuit, "input closed")
}

// fakeDisplay remembers every status line.
type fakeDisplay struct {
	statuses []string
	lasts    []*chess.Move
}

func (d *fakeDisplay) Show(_ *chess.Board, status string, last *chess.Move) {
	d.statuses = append(d.statuses, status)
	d.lasts = append(d.lasts, last)
}

func quietConfig() *config.Config {
	return config.NewConfigBuilder().
		WithLogFile(io.Discard).
		WithVerbosity(0).
		Build()
}

func newSession(t *testing.T, white, black player.Player, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(quietConfig(), white, black, opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func play(t *testing.T, s *Session) Result {
	t.Helper()
	result, err := s.Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	return result
}

var foolsMate = []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"}

// Sam Loyd's ten-move stalemate.
var loydStalemate = []string{
	"e2 e3", "a7 a5",
	"d1 h5", "a8 a6",
	"h5 a5", "h7 h5",
	"h2 h4", "a6 h6",
	"a5 c7", "f7 f6",
	"c7 d7", "e8 f7",
	"d7 b7", "d8 d3",
	"b7 b8", "d3 h7",
	"b8 c8", "f7 g6",
	"c8 e6",
}

var knightShuffle = []string{
	"g1 f3", "g8 f6", "f3 g1", "f6 g8",
	"g1 f3", "g8 f6", "f3 g1", "f6 g8",
	"g1 f3",
}

// alternate splits a move list into the white and black halves.
func alternate(moves []string) (white, black []string) {
	for i, m := range moves {
		if i%2 == 0 {
			white = append(white, m)
		} else {
			black = append(black, m)
		}
	}
	return white, black
}
