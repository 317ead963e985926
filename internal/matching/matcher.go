// Package matching selects recorded games by result, length, players and
// the positions they passed through.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-go/internal/storage"
)

// GameMatcher is the interface for all game matching implementations.
// Any component that can evaluate whether a game matches certain criteria
// should implement this interface.
type GameMatcher interface {
	// Match returns true if the game matches the matcher's criteria.
	Match(rec *storage.GameRecord) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple GameMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements GameMatcher.
func (c *CompositeMatcher) Match(rec *storage.GameRecord) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	switch c.mode {
	case MatchAll:
		for _, m := range c.matchers {
			if !m.Match(rec) {
				return false
			}
		}
		return true
	case MatchAny:
		for _, m := range c.matchers {
			if m.Match(rec) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// SetMode switches between AND and OR logic.
func (c *CompositeMatcher) SetMode(mode MatchMode) {
	c.mode = mode
}

// Matchers returns the list of matchers in this composite.
func (c *CompositeMatcher) Matchers() []GameMatcher {
	return c.matchers
}

// funcMatcher adapts a predicate to GameMatcher.
type funcMatcher struct {
	name  string
	match func(rec *storage.GameRecord) bool
}

func (f funcMatcher) Match(rec *storage.GameRecord) bool { return f.match(rec) }
func (f funcMatcher) Name() string                       { return f.name }

// WinnerMatcher matches games won by "white" or "black", or drawn and
// abandoned games with "none".
func WinnerMatcher(winner string) GameMatcher {
	want := strings.ToLower(winner)
	if want == "none" {
		want = ""
	}
	return funcMatcher{
		name:  fmt.Sprintf("Winner(%s)", winner),
		match: func(rec *storage.GameRecord) bool { return rec.Winner == want },
	}
}

// ReasonMatcher matches the recorded end of the game.
func ReasonMatcher(reason string) GameMatcher {
	return funcMatcher{
		name:  fmt.Sprintf("Reason(%s)", reason),
		match: func(rec *storage.GameRecord) bool { return strings.EqualFold(rec.Reason, reason) },
	}
}

// PlyRangeMatcher matches games of min to max plies; max 0 means no limit.
func PlyRangeMatcher(min, max int) GameMatcher {
	return funcMatcher{
		name: fmt.Sprintf("Plies(%d-%d)", min, max),
		match: func(rec *storage.GameRecord) bool {
			n := len(rec.Moves)
			return n >= min && (max == 0 || n <= max)
		},
	}
}

// PlayerMatcher matches games where either side was the given kind.
func PlayerMatcher(kind string) GameMatcher {
	return funcMatcher{
		name: fmt.Sprintf("Player(%s)", kind),
		match: func(rec *storage.GameRecord) bool {
			return strings.EqualFold(rec.White, kind) || strings.EqualFold(rec.Black, kind)
		},
	}
}

// ECOMatcher matches games whose opening code starts with prefix. Games
// must be classified first.
func ECOMatcher(prefix string) GameMatcher {
	return funcMatcher{
		name: fmt.Sprintf("ECO(%s)", prefix),
		match: func(rec *storage.GameRecord) bool {
			return rec.ECO != "" && strings.HasPrefix(strings.ToUpper(rec.ECO), strings.ToUpper(prefix))
		},
	}
}
