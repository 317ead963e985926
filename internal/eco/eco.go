// Package eco names the opening of a recorded game.
package eco

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/processing"
	"github.com/lgbarn/chess-go/internal/storage"
)

// ECOHalfMoveLimit is the maximum distance from an ECO line for a match.
const ECOHalfMoveLimit = 6

// ECOTableSize is the size of the ECO hash table.
const ECOTableSize = 4096

//go:embed openings.eco
var defaultTable string

// ECOEntry represents a single ECO classification entry.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	RequiredHash   uint64 // Position hash for matching
	CumulativeHash uint64 // XOR of the position hashes along the line
	HalfMoves      int    // Number of half-moves to reach this position
	Next           *ECOEntry
}

// ECOClassifier provides ECO classification for recorded games.
type ECOClassifier struct {
	table         [ECOTableSize]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new, empty ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// NewDefaultClassifier returns a classifier loaded with the built-in table
// of common openings.
func NewDefaultClassifier() *ECOClassifier {
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(defaultTable)); err != nil {
		panic(fmt.Sprintf("eco: built-in table: %v", err))
	}
	return ec
}

// LoadFromFile loads ECO data from a file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.LoadFromReader(file)
}

// LoadFromReader loads ECO lines of the form
//
//	C60 | Ruy Lopez | | e2e4 e7e5 g1f3 b8c6 f1b5
//
// Blank lines and lines starting with # are skipped.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, "|")
		if len(fields) != 4 {
			return fmt.Errorf("line %d: want 4 fields, got %d: %w", line, len(fields), errors.ErrInvalidInput)
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := ec.addECOEntry(fields[0], fields[1], fields[2], notation.SplitMoves(fields[3])); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return scanner.Err()
}

// addECOEntry replays an opening line and adds its final position to the table.
func (ec *ECOClassifier) addECOEntry(code, opening, variation string, moves []string) error {
	if code == "" {
		return fmt.Errorf("missing ECO code: %w", errors.ErrInvalidInput)
	}
	if len(moves) == 0 {
		return fmt.Errorf("%s has no moves: %w", code, errors.ErrInvalidInput)
	}

	analysis, err := processing.AnalyzeGame(&storage.GameRecord{Moves: moves})
	if err != nil {
		return err
	}

	var cumulativeHash uint64
	for _, h := range analysis.Positions[1:] {
		cumulativeHash ^= h
	}

	entry := &ECOEntry{
		ECOCode:        code,
		Opening:        opening,
		Variation:      variation,
		RequiredHash:   analysis.Positions[len(analysis.Positions)-1],
		CumulativeHash: cumulativeHash,
		HalfMoves:      len(moves),
	}

	ix := entry.RequiredHash % ECOTableSize
	for existing := ec.table[ix]; existing != nil; existing = existing.Next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.HalfMoves == entry.HalfMoves &&
			existing.CumulativeHash == entry.CumulativeHash {
			// Same line listed twice; first one wins
			return nil
		}
	}

	entry.Next = ec.table[ix]
	ec.table[ix] = entry
	ec.entriesLoaded++

	if entry.HalfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = entry.HalfMoves + ECOHalfMoveLimit
	}
	return nil
}

// ClassifyGame finds the deepest ECO match for a game, or nil.
func (ec *ECOClassifier) ClassifyGame(rec *storage.GameRecord) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}

	moves := rec.Moves
	if len(moves) > ec.maxHalfMoves {
		moves = moves[:ec.maxHalfMoves]
	}
	analysis, err := processing.AnalyzeGame(&storage.GameRecord{Moves: moves, Promotions: rec.Promotions})
	if err != nil {
		return nil
	}

	var bestMatch *ECOEntry
	var cumulativeHash uint64
	for halfMoves := 1; halfMoves < len(analysis.Positions); halfMoves++ {
		posHash := analysis.Positions[halfMoves]
		cumulativeHash ^= posHash

		if match := ec.findMatch(posHash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
	}
	return bestMatch
}

// findMatch looks up a position in the ECO table.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	ix := posHash % ECOTableSize
	var possible *ECOEntry

	for entry := ec.table[ix]; entry != nil; entry = entry.Next {
		if entry.RequiredHash == posHash {
			// Exact match on position and cumulative hash
			if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
				return entry
			}
			// Transposition within limit
			if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
				possible = entry
			}
		}
	}

	return possible
}

// AddECOTags fills in the record's opening fields. It reports whether an
// opening was found.
func (ec *ECOClassifier) AddECOTags(rec *storage.GameRecord) bool {
	match := ec.ClassifyGame(rec)
	if match == nil {
		return false
	}

	rec.ECO = match.ECOCode
	rec.Opening = match.Opening
	rec.Variation = match.Variation
	return true
}

// EntriesLoaded returns the number of ECO entries loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
