// Package history tracks the draw-rule state of a game session: the
// position log used for threefold repetition and the fifty-move counter.
package history

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/hashing"
)

// RepeatsForClaim is the number of occurrences that allows a repetition claim.
const RepeatsForClaim = 3

// History is an append-only log of position fingerprints, one per ply,
// starting with the initial position.
type History struct {
	entries []hashing.Fingerprint
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// UpdateHistory appends the fingerprint of the board. Call it once for the
// starting position and once after every completed move.
func (h *History) UpdateHistory(board *chess.Board) {
	h.entries = append(h.entries, hashing.NewFingerprint(board))
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	return len(h.entries)
}

// Repeats returns how many times the most recent position occurred with the
// same side to move, counting the most recent entry itself.
func (h *History) Repeats() int {
	last := len(h.entries) - 1
	if last < 0 {
		return 0
	}

	// Entries with the same index parity had the same side to move.
	count := 0
	for i := last; i >= 0; i -= 2 {
		if h.entries[i] == h.entries[last] {
			count++
		}
	}
	return count
}

// ThreeRepeats returns true if the most recent position has occurred at
// least three times with the same side to move.
func (h *History) ThreeRepeats() bool {
	return h.Repeats() >= RepeatsForClaim
}
