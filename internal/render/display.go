package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// TextDisplay writes boards as text to a writer.
type TextDisplay struct {
	w    io.Writer
	opts Options
}

// NewTextDisplay creates a text display.
func NewTextDisplay(w io.Writer, opts Options) *TextDisplay {
	return &TextDisplay{w: w, opts: opts}
}

// Show writes the board followed by the status line.
func (d *TextDisplay) Show(board *chess.Board, status string, last *chess.Move) {
	opts := d.opts
	opts.LastMove = last
	fmt.Fprint(d.w, Text(board, opts))
	if status != "" {
		fmt.Fprintln(d.w, status)
	}
}

// Screen is a full-screen display that also reads answers typed on the
// keyboard, so it serves both as display and as a player's prompter.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	opts   Options
	theme  Theme

	board   *chess.Board
	status  string
	message string
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(screen tcell.Screen, opts Options, theme Theme) *Screen {
	return &Screen{screen: screen, opts: opts, theme: theme, board: chess.NewBoard()}
}

// Show draws the board with a status line.
func (s *Screen) Show(board *chess.Board, status string, last *chess.Move) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = board.Clone()
	s.status = status
	s.opts.LastMove = last
	s.redraw("", "")
}

// Tell shows a message under the status line until the next one.
func (s *Screen) Tell(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.redraw("", "")
}

// Prompt shows the question and collects keys until Enter. Escape and
// Ctrl-C answer "q"; a closed screen is a request to quit.
func (s *Screen) Prompt(question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var answer []rune
	for {
		s.redraw(question, string(answer))

		ev := s.screen.PollEvent()
		if ev == nil {
			return "", errors.Wrap(errors.ErrQuit, "screen closed")
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue // Resize and other events just redraw.
		}

		switch key.Key() {
		case tcell.KeyEnter:
			s.message = ""
			return strings.TrimSpace(string(answer)), nil
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return "q", nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(answer) > 0 {
				answer = answer[:len(answer)-1]
			}
		case tcell.KeyRune:
			answer = append(answer, key.Rune())
		}
	}
}

// redraw paints everything. Callers hold mu.
func (s *Screen) redraw(question, answer string) {
	Draw(s.screen, s.board, s.status, s.opts, s.theme)

	style := tcell.StyleDefault.Foreground(s.theme.Text)
	y := promptRow
	if s.message != "" {
		drawString(s.screen, 0, y, s.message, style)
		y++
	}
	if question != "" {
		drawString(s.screen, 0, y, question, style)
		drawString(s.screen, 0, y+1, "> "+answer, style.Bold(true))
	}
	s.screen.Show()
}
