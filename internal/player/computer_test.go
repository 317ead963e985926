package player

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
	"github.com/lgbarn/chess-go/internal/worker"
)

func TestComputerPrefersRank(t *testing.T) {
	tests := []struct {
		name   string
		colour chess.Colour
		pieces []chess.Piece
		want   chess.Move
	}{
		{
			name:   "checkmate over capture",
			colour: chess.White,
			pieces: []chess.Piece{
				testutil.B(chess.King, 0, 6),
				testutil.B(chess.Pawn, 1, 5),
				testutil.B(chess.Pawn, 1, 6),
				testutil.B(chess.Pawn, 1, 7),
				testutil.B(chess.Knight, 7, 3),
				testutil.W(chess.Rook, 7, 0),
				testutil.W(chess.King, 7, 7),
			},
			want: chess.Move{From: chess.Sq(7, 0), To: chess.Sq(0, 0)},
		},
		{
			name:   "queen over pawn",
			colour: chess.White,
			pieces: []chess.Piece{
				testutil.W(chess.Rook, 4, 0),
				testutil.B(chess.Queen, 4, 6),
				testutil.B(chess.Pawn, 1, 0),
				testutil.W(chess.King, 7, 4),
				testutil.B(chess.King, 0, 4),
			},
			want: chess.Move{From: chess.Sq(4, 0), To: chess.Sq(4, 6)},
		},
		{
			name:   "promotion over quiet",
			colour: chess.White,
			pieces: []chess.Piece{
				testutil.W(chess.Pawn, 1, 3),
				testutil.W(chess.King, 7, 7),
				testutil.B(chess.King, 3, 7),
			},
			want: chess.Move{From: chess.Sq(1, 3), To: chess.Sq(0, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(tt.pieces...)
			for seed := int64(0); seed < 5; seed++ {
				c := NewComputer(tt.colour, WithSeed(seed), WithWorkers(3))
				got, err := c.ChooseMove(context.Background(), board)
				testutil.AssertNoError(t, err)
				testutil.AssertEqual(t, got, tt.want, "seed %d", seed)
			}
		})
	}
}

func TestComputerAvoidsStalemate(t *testing.T) {
	board := testutil.BoardWith(
		testutil.B(chess.King, 0, 0),
		testutil.W(chess.Queen, 3, 1),
		testutil.W(chess.King, 7, 7),
	)
	stalemate := chess.Move{From: chess.Sq(3, 1), To: chess.Sq(2, 1)}

	for seed := int64(0); seed < 20; seed++ {
		got, err := NewComputer(chess.White, WithSeed(seed)).ChooseMove(context.Background(), board)
		testutil.AssertNoError(t, err)
		if got == stalemate {
			t.Fatalf("seed %d chose the stalemating move", seed)
		}
		testutil.AssertTrue(t, engine.MoveLegal(board, got.From, got.To), "seed %d chose %v", seed, got)
	}
}

func TestComputerSeeded(t *testing.T) {
	board := chess.NewInitialBoard()
	a := NewComputer(chess.White, WithSeed(42), WithWorkers(4))
	b := NewComputer(chess.White, WithSeed(42))

	for i := 0; i < 5; i++ {
		ma, err := a.PlayTurn(context.Background(), board)
		testutil.AssertNoError(t, err)
		mb, err := b.PlayTurn(context.Background(), board)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, ma, mb, "call %d", i)
	}
}

func TestComputerNoMoves(t *testing.T) {
	board := testutil.BoardWith(
		testutil.B(chess.King, 0, 0),
		testutil.W(chess.Queen, 2, 1),
		testutil.W(chess.King, 7, 7),
	)
	_, err := NewComputer(chess.Black).ChooseMove(context.Background(), board)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestComputerAnswers(t *testing.T) {
	c := NewComputer(chess.Black)

	testutil.AssertEqual(t, c.Colour(), chess.Black)

	kind, err := c.RequestPromotion(chess.NewBoard())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, kind, "queen")

	accept, err := c.RequestDraw(ThreefoldRepetition)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, accept)

	answer, err := c.ConfirmQuit()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, answer, "n")
}

func TestBestMoves(t *testing.T) {
	moves := []chess.Move{
		{From: chess.Sq(6, 0), To: chess.Sq(5, 0)},
		{From: chess.Sq(6, 1), To: chess.Sq(5, 1)},
		{From: chess.Sq(6, 2), To: chess.Sq(5, 2)},
	}
	results := []worker.Result{
		{Move: moves[0], Score: rankQuiet},
		{Move: moves[1], Score: rankPawnCapture},
		{Move: moves[2], Score: rankPawnCapture},
	}
	testutil.AssertEqual(t, bestMoves(results), moves[1:])
}

func TestRankMove(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, rankMove(board, chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4)}, chess.White), rankQuiet)

	capture := testutil.BoardWith(testutil.W(chess.Knight, 4, 4), testutil.B(chess.Bishop, 2, 3), testutil.W(chess.King, 7, 0), testutil.B(chess.King, 0, 7))
	testutil.AssertEqual(t, rankMove(capture, chess.Move{From: chess.Sq(4, 4), To: chess.Sq(2, 3)}, chess.White), rankBishopCapture)
}
