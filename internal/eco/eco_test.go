package eco

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/storage"
	"github.com/lgbarn/chess-go/internal/testutil"
)

const testECOData = `
# test table
B90 | Sicilian | Najdorf | e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6
C50 | Giuoco Piano |  | e2e4 e7e5 g1f3 b8c6 f1c4 f8c5
D35 | QGD | Exchange Variation | d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c4d5 e6d5
`

func newTestClassifier(t *testing.T) *ECOClassifier {
	t.Helper()
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(testECOData)); err != nil {
		t.Fatalf("failed to load ECO data: %v", err)
	}
	return ec
}

func game(moves string) *storage.GameRecord {
	m := notation.SplitMoves(moves)
	return &storage.GameRecord{Moves: m, Plies: len(m)}
}

func TestECOClassifierLoad(t *testing.T) {
	ec := newTestClassifier(t)
	testutil.AssertEqual(t, ec.EntriesLoaded(), 3)

	t.Run("duplicates ignored", func(t *testing.T) {
		ec := newTestClassifier(t)
		testutil.AssertNoError(t, ec.LoadFromReader(strings.NewReader(testECOData)))
		testutil.AssertEqual(t, ec.EntriesLoaded(), 3)
	})

	t.Run("built-in table", func(t *testing.T) {
		testutil.AssertTrue(t, NewDefaultClassifier().EntriesLoaded() > 30)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing fields", "C50 | Giuoco Piano | e2e4\n", errors.ErrInvalidInput},
		{"no code", " | Nothing | | e2e4\n", errors.ErrInvalidInput},
		{"no moves", "C50 | Giuoco Piano | |\n", errors.ErrInvalidInput},
		{"illegal line", "C50 | Bad | | e2e5\n", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewECOClassifier().LoadFromReader(strings.NewReader(tt.input))
			testutil.AssertErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassifyGame(t *testing.T) {
	ec := newTestClassifier(t)

	tests := []struct {
		name      string
		moves     string
		wantCode  string
		wantFound bool
	}{
		{"exact line", "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6", "B90", true},
		{"continues past the line", "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5 c2c3 g8f6 d2d4", "C50", true},
		{"transposition", "g1f3 b8c6 e2e4 e7e5 f1c4 f8c5", "C50", true},
		{"no match", "a2a3", "", false},
		{"short of every line", "e2e4 e7e5", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := ec.ClassifyGame(game(tt.moves))
			if !tt.wantFound {
				if match != nil {
					t.Errorf("ClassifyGame() = %s; want nil", match.ECOCode)
				}
				return
			}
			if match == nil {
				t.Fatal("ClassifyGame() = nil")
			}
			testutil.AssertEqual(t, match.ECOCode, tt.wantCode)
		})
	}
}

func TestClassifyEmptyOrBad(t *testing.T) {
	if NewECOClassifier().ClassifyGame(game("e2e4")) != nil {
		t.Error("empty classifier should not match")
	}
	if newTestClassifier(t).ClassifyGame(game("e2e5")) != nil {
		t.Error("unreplayable game should not match")
	}
}

func TestAddECOTags(t *testing.T) {
	ec := NewDefaultClassifier()

	rec := game("e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5c6 d7c6")
	testutil.AssertTrue(t, ec.AddECOTags(rec))
	testutil.AssertEqual(t, rec.ECO, "C68")
	testutil.AssertEqual(t, rec.Opening, "Ruy Lopez")
	testutil.AssertEqual(t, rec.Variation, "Exchange Variation")

	fools := game("f2f3 e7e5 g2g4 d8h4")
	testutil.AssertTrue(t, ec.AddECOTags(fools))
	testutil.AssertEqual(t, fools.Opening, "Barnes Opening")

	none := game("h2h3")
	testutil.AssertFalse(t, ec.AddECOTags(none))
	testutil.AssertEqual(t, none.ECO, "")
}
