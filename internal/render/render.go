// Package render draws boards for players: as plain text for line-based
// terminals and onto a tcell screen for the full-screen mode.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-go/internal/chess"
)

// Options control how a board is drawn.
type Options struct {
	// Flipped draws the board from Black's side.
	Flipped bool

	// Coords adds rank numbers and file letters.
	Coords bool

	// LastMove, when set, is bracketed in text and highlighted on screen.
	LastMove *chess.Move
}

// DefaultOptions returns the options used by the interactive game.
func DefaultOptions() Options {
	return Options{Coords: true}
}

const files = "a b c d e f g h"

// order returns the display order of rows or columns.
func order(flipped bool) []int {
	idx := make([]int, chess.BoardSize)
	for i := range idx {
		if flipped {
			idx[i] = chess.BoardSize - 1 - i
		} else {
			idx[i] = i
		}
	}
	return idx
}

func isHighlighted(sq chess.Square, last *chess.Move) bool {
	return last != nil && (sq == last.From || sq == last.To)
}

// Text returns the board as eight lines of unicode glyphs with "_" for
// empty squares.
func Text(b *chess.Board, opts Options) string {
	var sb strings.Builder

	fileLabels := files
	if opts.Flipped {
		fileLabels = reverseFiles()
	}
	if opts.Coords {
		sb.WriteString("   " + fileLabels + "\n")
	}

	for _, row := range order(opts.Flipped) {
		rank := chess.BoardSize - row
		if opts.Coords {
			sb.WriteString(fmt.Sprintf("%d  ", rank))
		}
		for i, col := range order(opts.Flipped) {
			sq := chess.Sq(row, col)
			symbol := b.At(sq).Symbol()
			switch {
			case isHighlighted(sq, opts.LastMove):
				sb.WriteString("[" + symbol + "]")
			case i == chess.BoardSize-1:
				sb.WriteString(symbol)
			default:
				sb.WriteString(symbol + " ")
			}
		}
		if opts.Coords {
			sb.WriteString(fmt.Sprintf("  %d", rank))
		}
		sb.WriteString("\n")
	}

	if opts.Coords {
		sb.WriteString("   " + fileLabels + "\n")
	}
	return sb.String()
}

func reverseFiles() string {
	parts := strings.Fields(files)
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// Theme holds the screen colours.
type Theme struct {
	Light     tcell.Color
	Dark      tcell.Color
	Highlight tcell.Color
	Piece     tcell.Color
	Text      tcell.Color
}

// DefaultTheme returns a brown board.
func DefaultTheme() Theme {
	return Theme{
		Light:     tcell.NewRGBColor(240, 217, 181),
		Dark:      tcell.NewRGBColor(181, 136, 99),
		Highlight: tcell.NewRGBColor(205, 210, 106),
		Piece:     tcell.ColorBlack,
		Text:      tcell.ColorWhite,
	}
}

// Screen layout. Each square is three columns wide with the glyph centred.
const (
	cellWidth = 3
	boardLeft = 2
	boardTop  = 1
	statusGap = 1
	statusRow = boardTop + chess.BoardSize + 1 + statusGap
	promptRow = statusRow + 2
)

// Draw paints the board and a status line onto the screen and shows it.
func Draw(screen tcell.Screen, b *chess.Board, status string, opts Options, theme Theme) {
	screen.Clear()
	textStyle := tcell.StyleDefault.Foreground(theme.Text)

	for y, row := range order(opts.Flipped) {
		screenY := boardTop + y
		if opts.Coords {
			drawString(screen, 0, screenY, fmt.Sprint(chess.BoardSize-row), textStyle.Bold(true))
		}
		for x, col := range order(opts.Flipped) {
			sq := chess.Sq(row, col)
			bg := theme.Dark
			if (row+col)%2 == 0 {
				bg = theme.Light
			}
			if isHighlighted(sq, opts.LastMove) {
				bg = theme.Highlight
			}
			style := tcell.StyleDefault.Background(bg).Foreground(theme.Piece)

			glyph := ' '
			if p := b.At(sq); !p.IsEmpty() {
				glyph = []rune(p.Symbol())[0]
			}
			screenX := boardLeft + x*cellWidth
			screen.SetContent(screenX, screenY, ' ', nil, style)
			screen.SetContent(screenX+1, screenY, glyph, nil, style)
			screen.SetContent(screenX+2, screenY, ' ', nil, style)
		}
	}

	if opts.Coords {
		y := boardTop + chess.BoardSize
		for x, col := range order(opts.Flipped) {
			screen.SetContent(boardLeft+x*cellWidth+1, y, rune('a'+col), nil, textStyle.Bold(true))
		}
	}

	drawString(screen, 0, statusRow, status, textStyle)
	screen.Show()
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
