// Package game runs a chess session: it asks players for moves, applies
// them through the rules engine and ends the game on checkmate, stalemate,
// an accepted draw claim or a confirmed quit.
package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/history"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/player"
	"github.com/lgbarn/chess-go/internal/storage"
)

// Verbosity levels for session logging.
const (
	LogResults = 1
	LogMoves   = 2
)

// Display shows the board between turns.
type Display interface {
	Show(board *chess.Board, status string, last *chess.Move)
}

// Recorder stores finished games.
type Recorder interface {
	SaveGame(rec *storage.GameRecord) error
}

// Session is one game between two players.
type Session struct {
	cfg     *config.Config
	players [chess.NumColours]player.Player

	board   *chess.Board
	history *history.History
	fifty   history.FiftyMoveCounter
	toMove  chess.Colour

	display  Display
	recorder Recorder
	logger   *log.Logger
	now      func() time.Time

	script     []string
	moves      []string
	promotions map[int]string
	last       *chess.Move

	started time.Time
	result  *Result
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithScriptedMoves replays moves before asking the players.
func WithScriptedMoves(moves []string) Option {
	return func(s *Session) {
		s.script = append([]string(nil), moves...)
	}
}

// WithDisplay sets where the board is shown.
func WithDisplay(d Display) Option {
	return func(s *Session) {
		s.display = d
	}
}

// WithRecorder stores the game when the session closes.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithLogger replaces the logger built from the config's log file.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithClock sets the time source for game records.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates a session on the initial position.
func NewSession(cfg *config.Config, white, black player.Player, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if white == nil || black == nil {
		return nil, fmt.Errorf("missing player: %w", errors.ErrInvalidConfig)
	}
	if white.Colour() != chess.White || black.Colour() != chess.Black {
		return nil, fmt.Errorf("players seated on the wrong side: %w", errors.ErrInvalidConfig)
	}

	s := &Session{
		cfg:        cfg,
		players:    [chess.NumColours]player.Player{white, black},
		board:      chess.NewInitialBoard(),
		history:    history.New(),
		toMove:     chess.White,
		now:        time.Now,
		promotions: make(map[int]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		w := cfg.LogFile
		if w == nil {
			w = io.Discard
		}
		s.logger = log.New(w, "chess: ", log.LstdFlags)
	}
	return s, nil
}

// Board returns the current position.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Result returns the outcome once Play has finished.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

func (s *Session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level {
		s.logger.Printf(format, args...)
	}
}

// Play runs the game to its end. It returns early with the context's error
// when ctx is cancelled, and with any error a player reports other than a
// request to quit.
func (s *Session) Play(ctx context.Context) (Result, error) {
	if s.result != nil {
		return *s.result, nil
	}

	s.started = s.now()
	for _, p := range s.players {
		p.NotifyColour()
	}
	s.history.UpdateHistory(s.board)

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s.show(s.status())

		result, done, err := s.turn(ctx)
		if err != nil {
			return Result{}, err
		}
		if done {
			s.result = &result
			s.show(result.String())
			s.logf(LogResults, "game over after %d plies: %s", result.Plies, result)
			return result, nil
		}
		s.toMove = s.toMove.Opposite()
	}
}

// turn plays one ply for the side to move.
func (s *Session) turn(ctx context.Context) (Result, bool, error) {
	colour := s.toMove
	p := s.players[colour]

	move, quit, err := s.readMove(ctx, p)
	if err != nil {
		return Result{}, false, err
	}
	if quit {
		return s.finish(Quit, colour), true, nil
	}

	before, lastBefore := *s.board, s.last
	outcome, err := engine.MovePiece(s.board, move.From, move.To)
	if err != nil {
		return Result{}, false, err
	}
	ply := len(s.moves)
	s.moves = append(s.moves, notation.FormatMove(move))
	s.last = &move

	if outcome == chess.PawnPromotion {
		if err := s.promote(p, move.To, ply); err != nil {
			if !errors.Is(err, errors.ErrQuit) {
				return Result{}, false, err
			}
			// A pawn may not stay on the last row: take the move back.
			s.logf(LogResults, "%s left at promotion: %v", colour, err)
			*s.board = before
			s.moves = s.moves[:ply]
			s.last = lastBefore
			return s.finish(Quit, colour), true, nil
		}
	}

	s.fifty.Record(outcome)
	s.history.UpdateHistory(s.board)
	s.logf(LogMoves, "ply %d: %s %s (%s)", ply+1, colour, s.moves[ply], outcome)

	opponent := colour.Opposite()
	switch engine.PositionStatus(s.board, opponent) {
	case engine.Checkmate:
		return s.finish(Checkmate, colour), true, nil
	case engine.Stalemate:
		return s.finish(Stalemate, colour), true, nil
	}

	return s.offerDraws(p, colour)
}

// readMove asks the player until it gets a legal move or a confirmed quit.
// Scripted moves are used first and must be legal.
func (s *Session) readMove(ctx context.Context, p player.Player) (chess.Move, bool, error) {
	colour := p.Colour()

	if len(s.script) > 0 {
		text := s.script[0]
		s.script = s.script[1:]
		move, err := s.parse(text, colour)
		if err != nil {
			return move, false, &errors.MoveError{
				Err:    err,
				Ply:    len(s.moves) + 1,
				Colour: colour.String(),
				Text:   text,
			}
		}
		return move, false, nil
	}

	text, err := p.PlayTurn(ctx, s.board)
	for {
		if err != nil {
			if errors.Is(err, errors.ErrQuit) {
				s.logf(LogResults, "%s left: %v", colour, err)
				return chess.Move{}, true, nil
			}
			return chess.Move{}, false, err
		}

		if notation.IsQuit(text) {
			text, err = p.ConfirmQuit()
			if err == nil && notation.IsYes(text) {
				return chess.Move{}, true, nil
			}
			// Anything else is taken as the move to play.
			continue
		}

		move, perr := s.parse(text, colour)
		if perr == nil {
			return move, false, nil
		}
		s.logf(LogMoves, "%v", &errors.MoveError{
			Err:    perr,
			Ply:    len(s.moves) + 1,
			Colour: colour.String(),
			Text:   text,
		})
		p.Reject(perr)

		if err := ctx.Err(); err != nil {
			return chess.Move{}, false, err
		}
		text, err = p.PlayTurn(ctx, s.board)
	}
}

// parse turns text into a move that is legal for colour.
func (s *Session) parse(text string, colour chess.Colour) (chess.Move, error) {
	from, to, err := notation.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	if err := engine.ValidateMove(s.board, from, to, colour); err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: from, To: to}, nil
}

// promote asks until the player names a piece a pawn may become.
func (s *Session) promote(p player.Player, sq chess.Square, ply int) error {
	for {
		answer, err := p.RequestPromotion(s.board)
		if err != nil {
			return err
		}
		kind, err := notation.ParsePromotion(answer)
		if err == nil {
			err = engine.PromotePawn(s.board, kind, sq)
		}
		if err == nil {
			s.promotions[ply] = notation.PromotionName(kind)
			return nil
		}
		if !errors.Is(err, errors.ErrInvalidPromotion) {
			return err
		}
		p.Reject(err)
	}
}

// offerDraws lets the player who just moved claim any available draw.
func (s *Session) offerDraws(p player.Player, colour chess.Colour) (Result, bool, error) {
	claims := []struct {
		available bool
		reason    player.DrawReason
		result    Reason
	}{
		{s.fifty.CanClaim(), player.FiftyMoveRule, FiftyMoveDraw},
		{s.history.ThreeRepeats(), player.ThreefoldRepetition, ThreefoldDraw},
	}

	for _, c := range claims {
		if !c.available {
			continue
		}
		accept, err := p.RequestDraw(c.reason)
		if err != nil {
			if errors.Is(err, errors.ErrQuit) {
				return s.finish(Quit, colour), true, nil
			}
			return Result{}, false, err
		}
		if accept {
			return s.finish(c.result, colour), true, nil
		}
	}
	return Result{}, false, nil
}

// finish builds the result; mover is the side that made the last move
// or quit.
func (s *Session) finish(reason Reason, mover chess.Colour) Result {
	result := Result{
		Reason: reason,
		Plies:  len(s.moves),
		Moves:  append([]string(nil), s.moves...),
	}
	if len(s.promotions) > 0 {
		result.Promotions = make(map[int]string, len(s.promotions))
		for ply, name := range s.promotions {
			result.Promotions[ply] = name
		}
	}
	switch reason {
	case Checkmate:
		result.Decisive = true
		result.Winner = mover
	case Quit:
		result.Quitter = mover
	}
	return result
}

// status is the line shown under the board before a turn.
func (s *Session) status() string {
	line := fmt.Sprintf("%s to move", s.toMove)
	if engine.InCheck(s.board, s.toMove) {
		line += " (check)"
	}
	return line
}

func (s *Session) show(status string) {
	if s.display != nil {
		s.display.Show(s.board, status, s.last)
	}
}

// Record returns the game as stored in the archive.
func (s *Session) Record() (*storage.GameRecord, error) {
	if s.result == nil {
		return nil, fmt.Errorf("game not finished: %w", errors.ErrRecordNotFound)
	}
	return &storage.GameRecord{
		White:      s.cfg.Players.White.String(),
		Black:      s.cfg.Players.Black.String(),
		Winner:     s.result.winnerName(),
		Reason:     s.result.Reason.String(),
		Moves:      s.result.Moves,
		Plies:      s.result.Plies,
		Promotions: s.result.Promotions,
		Started:    s.started,
		Finished:   s.now(),
	}, nil
}

// Close records a finished game when a recorder is attached and saving
// is enabled. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.recorder == nil || !s.cfg.Storage.Save || s.result == nil {
		return nil
	}
	rec, err := s.Record()
	if err != nil {
		return err
	}
	if err := s.recorder.SaveGame(rec); err != nil {
		return errors.Wrap(err, "saving game")
	}
	s.logf(LogResults, "saved game %d", rec.ID)
	return nil
}
