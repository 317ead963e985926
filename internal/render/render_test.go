package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func TestText(t *testing.T) {
	board := chess.NewInitialBoard()

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "plain",
			opts: Options{},
			want: []string{
				"♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜",
				"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟",
				"_ _ _ _ _ _ _ _",
				"_ _ _ _ _ _ _ _",
				"_ _ _ _ _ _ _ _",
				"_ _ _ _ _ _ _ _",
				"♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙",
				"♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖",
			},
		},
		{
			name: "flipped",
			opts: Options{Flipped: true},
			want: []string{
				"♖ ♘ ♗ ♔ ♕ ♗ ♘ ♖",
				"♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙",
				"_ _ _ _ _ _ _ _",
				"_ _ _ _ _ _ _ _",
				"_ _ _ _ _ _ _ _",
				"_ _ _ _ _ _ _ _",
				"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟",
				"♜ ♞ ♝ ♚ ♛ ♝ ♞ ♜",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(strings.TrimSuffix(Text(board, tt.opts), "\n"), "\n")
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestTextCoords(t *testing.T) {
	lines := strings.Split(Text(chess.NewInitialBoard(), DefaultOptions()), "\n")

	testutil.AssertEqual(t, lines[0], "   a b c d e f g h")
	testutil.AssertEqual(t, lines[1], "8  ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜  8")
	testutil.AssertEqual(t, lines[8], "1  ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖  1")
	testutil.AssertEqual(t, lines[9], "   a b c d e f g h")

	flipped := strings.Split(Text(chess.NewInitialBoard(), Options{Coords: true, Flipped: true}), "\n")
	testutil.AssertEqual(t, flipped[0], "   h g f e d c b a")
	testutil.AssertEqual(t, flipped[1], "1  ♖ ♘ ♗ ♔ ♕ ♗ ♘ ♖  1")
}

func TestTextLastMove(t *testing.T) {
	board := testutil.BoardWith(testutil.W(chess.King, 7, 0), testutil.B(chess.King, 0, 7))
	last := chess.Move{From: chess.Sq(7, 1), To: chess.Sq(7, 0)}

	lines := strings.Split(Text(board, Options{LastMove: &last}), "\n")
	testutil.AssertEqual(t, lines[7], "[♔][_]_ _ _ _ _ _")
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(40, 16)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func lineAt(screen tcell.Screen, y, n int) string {
	var line []rune
	for x := 0; x < n; x++ {
		line = append(line, runeAt(screen, x, y))
	}
	return string(line)
}

func TestDraw(t *testing.T) {
	screen := newScreen(t)
	theme := DefaultTheme()
	board := chess.NewInitialBoard()

	Draw(screen, board, "White to move", DefaultOptions(), theme)

	squareX := func(col int) int { return boardLeft + col*cellWidth + 1 }
	squareY := func(row int) int { return boardTop + row }

	testutil.AssertEqual(t, runeAt(screen, squareX(4), squareY(7)), '♔')
	testutil.AssertEqual(t, runeAt(screen, squareX(3), squareY(0)), '♛')
	testutil.AssertEqual(t, runeAt(screen, squareX(4), squareY(4)), ' ')
	testutil.AssertEqual(t, runeAt(screen, 0, squareY(0)), '8')
	testutil.AssertEqual(t, runeAt(screen, squareX(0), boardTop+chess.BoardSize), 'a')

	_, _, style, _ := screen.GetContent(squareX(0), squareY(0))
	_, bg, _ := style.Decompose()
	testutil.AssertEqual(t, bg, theme.Light, "a8 is light")

	_, _, style, _ = screen.GetContent(squareX(1), squareY(0))
	_, bg, _ = style.Decompose()
	testutil.AssertEqual(t, bg, theme.Dark, "b8 is dark")

	testutil.AssertEqual(t, lineAt(screen, statusRow, len("White to move")), "White to move")
}

func TestDrawHighlightsLastMove(t *testing.T) {
	screen := newScreen(t)
	theme := DefaultTheme()
	last := chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4)}

	Draw(screen, chess.NewInitialBoard(), "", Options{LastMove: &last}, theme)

	for _, sq := range []chess.Square{last.From, last.To} {
		_, _, style, _ := screen.GetContent(boardLeft+sq.Col*cellWidth, boardTop+sq.Row)
		_, bg, _ := style.Decompose()
		testutil.AssertEqual(t, bg, theme.Highlight, "square %v", sq)
	}
}
