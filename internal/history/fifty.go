package history

import "github.com/lgbarn/chess-go/internal/chess"

// FiftyMovePlies is the number of plies without a pawn move or capture
// after which a draw may be claimed.
const FiftyMovePlies = 100

// FiftyMoveCounter counts plies since the last pawn move or capture.
type FiftyMoveCounter struct {
	plies int
}

// Record updates the counter with the outcome of a completed move.
func (c *FiftyMoveCounter) Record(outcome chess.Outcome) {
	if outcome.ResetsFiftyMoveCount() {
		c.plies = 0
		return
	}
	c.plies++
}

// Plies returns the current count.
func (c *FiftyMoveCounter) Plies() int {
	return c.plies
}

// CanClaim reports whether a fifty-move draw may be claimed.
func (c *FiftyMoveCounter) CanClaim() bool {
	return c.plies >= FiftyMovePlies
}
