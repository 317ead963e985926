package player

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/worker"
)

// Move ranks, worst first. Captures rank by the captured piece.
const (
	rankStalemate = iota
	rankQuiet
	rankPawnCapture
	rankKnightCapture
	rankBishopCapture
	rankRookCapture
	rankQueenCapture
	rankPromotion
	rankCheckmate
)

var captureRanks = map[chess.Kind]int{
	chess.Pawn:   rankPawnCapture,
	chess.Knight: rankKnightCapture,
	chess.Bishop: rankBishopCapture,
	chess.Rook:   rankRookCapture,
	chess.Queen:  rankQueenCapture,
}

// Computer is a player that ranks every legal move by its immediate result
// and plays a random move among the best.
type Computer struct {
	colour  chess.Colour
	rng     *rand.Rand
	workers int
}

// ComputerOption configures a Computer.
type ComputerOption func(*Computer)

// WithSeed makes the computer's choices reproducible.
func WithSeed(seed int64) ComputerOption {
	return func(c *Computer) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWorkers sets how many goroutines score moves.
func WithWorkers(n int) ComputerOption {
	return func(c *Computer) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// NewComputer creates a computer player for the colour.
func NewComputer(colour chess.Colour, opts ...ComputerOption) *Computer {
	c := &Computer{colour: colour, workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Colour returns the side the computer plays.
func (c *Computer) Colour() chess.Colour {
	return c.colour
}

// NotifyColour does nothing.
func (c *Computer) NotifyColour() {}

// PlayTurn returns the chosen move as text.
func (c *Computer) PlayTurn(ctx context.Context, board *chess.Board) (string, error) {
	move, err := c.ChooseMove(ctx, board)
	if err != nil {
		return "", err
	}
	return notation.FormatMove(move), nil
}

// ChooseMove scores every legal move and picks randomly among the
// highest ranked.
func (c *Computer) ChooseMove(ctx context.Context, board *chess.Board) (chess.Move, error) {
	moves := engine.LegalMoves(board, c.colour)
	if len(moves) == 0 {
		return chess.Move{}, fmt.Errorf("%v has no legal move: %w", c.colour, errors.ErrIllegalMove)
	}

	results, err := worker.ScoreMoves(ctx, board, c.colour, moves, scoreMove,
		worker.WithWorkers(c.workers), worker.WithBufferSize(len(moves)))
	if err != nil {
		return chess.Move{}, errors.Wrap(err, "scoring moves")
	}

	best := bestMoves(results)
	return best[c.rng.Intn(len(best))], nil
}

// bestMoves returns the moves sharing the highest score, in input order.
func bestMoves(results []worker.Result) []chess.Move {
	var best []chess.Move
	top := -1
	for _, r := range results {
		switch {
		case r.Score > top:
			top = r.Score
			best = []chess.Move{r.Move}
		case r.Score == top:
			best = append(best, r.Move)
		}
	}
	return best
}

// scoreMove ranks the result of one move.
func scoreMove(item worker.WorkItem) worker.Result {
	return worker.Result{Move: item.Move, Index: item.Index, Score: rankMove(item.Board, item.Move, item.Colour)}
}

func rankMove(board *chess.Board, move chess.Move, colour chess.Colour) int {
	switch {
	case engine.MoveCheckmatesOpponent(board, move, colour):
		return rankCheckmate
	case engine.MoveStalematesOpponent(board, move, colour):
		return rankStalemate
	case board.At(move.From).Kind == chess.Pawn && move.To.Row == colour.PromotionRow():
		return rankPromotion
	}
	if rank, ok := captureRanks[board.At(move.To).Kind]; ok {
		return rank
	}
	return rankQuiet
}

// RequestPromotion always picks a queen.
func (c *Computer) RequestPromotion(_ *chess.Board) (string, error) {
	return notation.PromotionName(chess.Queen), nil
}

// RequestDraw always accepts.
func (c *Computer) RequestDraw(_ DrawReason) (bool, error) {
	return true, nil
}

// ConfirmQuit never quits.
func (c *Computer) ConfirmQuit() (string, error) {
	return "n", nil
}

// Reject does nothing; the computer only plays legal moves.
func (c *Computer) Reject(error) {}
