package matching

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/storage"
)

// GameFilter combines record criteria and position matching.
type GameFilter struct {
	Criteria        *CompositeMatcher
	PositionMatcher *PositionMatcher
}

// NewGameFilter creates a new game filter.
func NewGameFilter() *GameFilter {
	return &GameFilter{
		Criteria:        NewCompositeMatcher(MatchAll),
		PositionMatcher: NewPositionMatcher(),
	}
}

// Load reads criteria, one per line:
//
//	winner white|black|none
//	reason checkmate
//	player computer
//	plies 10 40
//	reached e2e4 e7e5
//	eco C6
//	any
//
// "any" keeps games meeting at least one criterion instead of all of them.
// Blank lines and lines starting with # are skipped.
func (gf *GameFilter) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := gf.parseCriterion(text); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return scanner.Err()
}

func (gf *GameFilter) parseCriterion(text string) error {
	fields := strings.Fields(text)
	key, args := strings.ToLower(fields[0]), fields[1:]

	switch {
	case key == "any" && len(args) == 0:
		gf.SetMatchAny(true)
		return nil
	case key == "winner" && len(args) == 1:
		return gf.AddWinnerFilter(args[0])
	case key == "reason" && len(args) > 0:
		gf.AddReasonFilter(strings.Join(args, " "))
		return nil
	case key == "player" && len(args) == 1:
		gf.AddPlayerFilter(args[0])
		return nil
	case key == "plies" && (len(args) == 1 || len(args) == 2):
		min, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: plies %q", errors.ErrInvalidInput, args[0])
		}
		max := 0
		if len(args) == 2 {
			if max, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("%w: plies %q", errors.ErrInvalidInput, args[1])
			}
		}
		return gf.AddPlyFilter(min, max)
	case key == "eco" && len(args) == 1:
		gf.AddECOFilter(args[0])
		return nil
	case key == "reached":
		return gf.AddReachedFilter(args, strings.Join(args, " "))
	}
	return fmt.Errorf("%w: criterion %q", errors.ErrInvalidInput, text)
}

// AddWinnerFilter adds a filter for the winning side.
func (gf *GameFilter) AddWinnerFilter(winner string) error {
	switch strings.ToLower(winner) {
	case "white", "black", "none":
	default:
		return fmt.Errorf("%w: winner %q", errors.ErrInvalidInput, winner)
	}
	gf.Criteria.Add(WinnerMatcher(winner))
	return nil
}

// AddReasonFilter adds a filter for how the game ended.
func (gf *GameFilter) AddReasonFilter(reason string) {
	gf.Criteria.Add(ReasonMatcher(reason))
}

// AddPlayerFilter adds a filter for a player kind on either side.
func (gf *GameFilter) AddPlayerFilter(kind string) {
	gf.Criteria.Add(PlayerMatcher(kind))
}

// AddPlyFilter adds a game length filter; max 0 means unbounded.
func (gf *GameFilter) AddPlyFilter(min, max int) error {
	if min < 0 || max < 0 || (max > 0 && max < min) {
		return fmt.Errorf("%w: plies %d-%d", errors.ErrInvalidInput, min, max)
	}
	gf.Criteria.Add(PlyRangeMatcher(min, max))
	return nil
}

// AddECOFilter adds a filter for an opening code prefix.
func (gf *GameFilter) AddECOFilter(prefix string) {
	gf.Criteria.Add(ECOMatcher(prefix))
}

// AddReachedFilter adds the position after moves as a target.
func (gf *GameFilter) AddReachedFilter(moves []string, label string) error {
	return gf.PositionMatcher.AddMoves(moves, label)
}

// SetMatchAny keeps games that meet any criterion rather than all.
func (gf *GameFilter) SetMatchAny(enabled bool) {
	if enabled {
		gf.Criteria.SetMode(MatchAny)
		return
	}
	gf.Criteria.SetMode(MatchAll)
}

// MatchGame checks if a game matches the filter criteria.
func (gf *GameFilter) MatchGame(rec *storage.GameRecord) bool {
	if !gf.HasCriteria() {
		return true // no criteria = match all
	}

	hasCriteria := len(gf.Criteria.Matchers()) > 0
	hasPosition := gf.PositionMatcher.PatternCount() > 0

	if gf.Criteria.mode == MatchAny {
		return (hasCriteria && gf.Criteria.Match(rec)) || (hasPosition && gf.PositionMatcher.Match(rec))
	}
	return (!hasCriteria || gf.Criteria.Match(rec)) && (!hasPosition || gf.PositionMatcher.Match(rec))
}

// HasCriteria returns true if any filter criteria are set.
func (gf *GameFilter) HasCriteria() bool {
	return len(gf.Criteria.Matchers()) > 0 || gf.PositionMatcher.PatternCount() > 0
}

// Filter returns the records that match, in order.
func (gf *GameFilter) Filter(recs []*storage.GameRecord) []*storage.GameRecord {
	var out []*storage.GameRecord
	for _, rec := range recs {
		if gf.MatchGame(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Match implements GameMatcher interface.
func (gf *GameFilter) Match(rec *storage.GameRecord) bool {
	return gf.MatchGame(rec)
}

// Name implements GameMatcher interface.
func (gf *GameFilter) Name() string {
	return "GameFilter"
}
