// chess plays a game of chess in the terminal between humans, the computer,
// or both, and keeps a record of finished games.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/eco"
	"github.com/lgbarn/chess-go/internal/game"
	"github.com/lgbarn/chess-go/internal/matching"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/output"
	"github.com/lgbarn/chess-go/internal/player"
	"github.com/lgbarn/chess-go/internal/processing"
	"github.com/lgbarn/chess-go/internal/render"
	"github.com/lgbarn/chess-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closeLog := setupLogFile(cfg)
	defer closeLog()

	store := openStore(cfg)
	defer store.Close()

	switch {
	case *listGames:
		exitOn(printGames(store, mustSelection(), cfg.Output))
		return
	case *analyzeID != 0:
		exitOn(printAnalysis(store, *analyzeID, cfg.Output))
		return
	case *exportGames:
		exitOn(exportRecorded(store, mustSelection(), newGameWriter(cfg.Output)))
		return
	}

	script := loadScript()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var recorder game.Recorder
	if cfg.Storage.Save {
		recorder = store
	}
	result, err := runGame(ctx, cfg, recorder, script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintln(cfg.Output, result)
	}
}

// exitOn reports err and exits when it is not nil.
func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// selection picks recorded games for listing and export.
type selection struct {
	filter   *matching.GameFilter
	openings *eco.ECOClassifier
}

// games classifies every recorded game and returns those the filter keeps.
func (s selection) games(store *storage.Store) ([]*storage.GameRecord, error) {
	games, err := store.ListGames()
	if err != nil {
		return nil, err
	}
	if s.openings != nil {
		for _, g := range games {
			s.openings.AddECOTags(g)
		}
	}
	if s.filter == nil {
		return games, nil
	}
	return s.filter.Filter(games), nil
}

// mustSelection builds the selection from flags or exits with a usage error.
func mustSelection() selection {
	gf, err := buildFilter()
	if err == nil {
		var openings *eco.ECOClassifier
		if openings, err = loadOpenings(); err == nil {
			return selection{filter: gf, openings: openings}
		}
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(2)
	return selection{}
}

// setupLogFile points cfg.LogFile at the -l file when given.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() }
}

// openStore opens the game archive that applyStorageFlags resolved from -db.
func openStore(cfg *config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadScript reads the -moves file.
func loadScript() []string {
	if *movesFile == "" {
		return nil
	}
	file, err := os.Open(*movesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening moves file %s: %v\n", *movesFile, err)
		os.Exit(1)
	}
	defer file.Close()

	moves, err := notation.ReadMoves(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in moves file %s: %v\n", *movesFile, err)
		os.Exit(1)
	}
	return moves
}

// runGame sets up the display and players and plays one game.
func runGame(ctx context.Context, cfg *config.Config, recorder game.Recorder, script []string) (game.Result, error) {
	opts := render.DefaultOptions()
	opts.Flipped = cfg.Display.Flipped
	opts.Coords = cfg.Display.Coords

	var (
		display  game.Display
		prompter player.Prompter
	)
	if cfg.Display.TUI {
		screen, err := tcell.NewScreen()
		if err != nil {
			return game.Result{}, err
		}
		if err := screen.Init(); err != nil {
			return game.Result{}, err
		}
		defer screen.Fini()

		s := render.NewScreen(screen, opts, render.DefaultTheme())
		display, prompter = s, s
	} else {
		display = render.NewTextDisplay(cfg.Output, opts)
		prompter = player.NewConsole(cfg.Input, cfg.Output)
	}

	return playSession(ctx, cfg, display, prompter, recorder, script)
}

// playSession plays a game and records it.
func playSession(ctx context.Context, cfg *config.Config, display game.Display, prompter player.Prompter,
	recorder game.Recorder, script []string) (game.Result, error) {
	white, black, err := game.NewPlayers(cfg.Players, prompter)
	if err != nil {
		return game.Result{}, err
	}

	opts := []game.Option{game.WithDisplay(display), game.WithScriptedMoves(script)}
	if recorder != nil {
		opts = append(opts, game.WithRecorder(recorder))
	}
	session, err := game.NewSession(cfg, white, black, opts...)
	if err != nil {
		return game.Result{}, err
	}

	result, err := session.Play(ctx)
	if closeErr := session.Close(); err == nil {
		err = closeErr
	}
	return result, err
}

// printGames lists the selected games with a summary line for the archive.
func printGames(store *storage.Store, sel selection, w io.Writer) error {
	games, err := sel.games(store)
	if err != nil {
		return err
	}
	for _, g := range games {
		winner := g.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Fprintf(w, "%4d  %s  %-8s vs %-8s  %-17s  winner %-5s  %3d plies",
			g.ID, g.Finished.Format("2006-01-02 15:04"), g.White, g.Black, g.Reason, winner, g.Plies)
		if g.ECO != "" {
			fmt.Fprintf(w, "  %s %s", g.ECO, g.Opening)
		}
		fmt.Fprintln(w)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d games: white %d, black %d, drawn %d, abandoned %d\n",
		stats.Games, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.Abandoned)
	return nil
}

// printAnalysis replays one recorded game and reports what it found.
func printAnalysis(store *storage.Store, id uint64, w io.Writer) error {
	rec, err := store.LoadGame(id)
	if err != nil {
		return err
	}

	validation := processing.ValidateGame(rec)
	if !validation.Valid {
		fmt.Fprintf(w, "Game %d is inconsistent: %s\n", id, validation.ErrorMsg)
		return nil
	}

	analysis, err := processing.AnalyzeGame(rec)
	if err != nil {
		return err
	}
	fmt.Fprint(w, render.Text(analysis.FinalBoard, render.DefaultOptions()))
	fmt.Fprintf(w, "Game %d: %d plies, %s\n", id, analysis.Plies, rec.Reason)
	fmt.Fprintf(w, "  final position:             %s to move, %s\n", analysis.ToMove, analysis.FinalStatus)
	fmt.Fprintf(w, "  fifty move claim available: %v\n", analysis.FiftyMoveTriggered())
	fmt.Fprintf(w, "  seventy-five move rule:     %v\n", analysis.Has75MoveRule)
	fmt.Fprintf(w, "  threefold repetition:       %v\n", analysis.RepetitionDetected())
	fmt.Fprintf(w, "  fivefold repetition:        %v\n", analysis.Has5FoldRepetition)
	fmt.Fprintf(w, "  underpromotion:             %v\n", analysis.UnderpromotionFound())
	fmt.Fprintf(w, "  insufficient material:      %v\n", analysis.HasInsufficientMaterial)
	return nil
}

// newGameWriter picks the export format from -J, -stream and -w.
func newGameWriter(w io.Writer) output.GameWriter {
	switch {
	case *jsonOutput && *jsonStream:
		return output.NewJSONWriterSingle(w)
	case *jsonOutput:
		return output.NewJSONWriter(w)
	}
	return output.NewPGNWriter(w, *lineLength)
}

// exportRecorded writes the selected recorded games.
func exportRecorded(store *storage.Store, sel selection, writer output.GameWriter) error {
	games, err := sel.games(store)
	if err != nil {
		return err
	}
	for _, g := range games {
		if err := writer.WriteGame(g); err != nil {
			return err
		}
	}
	return writer.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal. Moves are entered as two squares, e.g. e2 e4;\n")
	fmt.Fprintf(os.Stderr, "enter %s to quit.\n\n", notation.QuitCommand)
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
