// Package output writes recorded games for other tools: PGN tag pairs with
// long algebraic moves, or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/storage"
)

// DefaultLineLength is the move text width used when none is given.
const DefaultLineLength = 80

// sevenTagRoster is the PGN tag order every export starts with.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// ResultString returns the PGN result token for a record.
func ResultString(rec *storage.GameRecord) string {
	switch {
	case rec.Winner == "white":
		return "1-0"
	case rec.Winner == "black":
		return "0-1"
	case rec.Reason == storage.ReasonQuit:
		return "*"
	}
	return "1/2-1/2"
}

// Tags returns the record's PGN tags in output order.
func Tags(rec *storage.GameRecord) [][2]string {
	date := "????.??.??"
	if !rec.Finished.IsZero() {
		date = rec.Finished.Format("2006.01.02")
	}
	values := map[string]string{
		"Event":  "Casual game",
		"Site":   "?",
		"Date":   date,
		"Round":  fmt.Sprintf("%d", rec.ID),
		"White":  rec.White,
		"Black":  rec.Black,
		"Result": ResultString(rec),
	}

	tags := make([][2]string, 0, len(sevenTagRoster)+5)
	for _, tag := range sevenTagRoster {
		value := values[tag]
		if value == "" {
			value = "?"
		}
		tags = append(tags, [2]string{tag, value})
	}
	for _, tag := range [][2]string{{"ECO", rec.ECO}, {"Opening", rec.Opening}, {"Variation", rec.Variation}} {
		if tag[1] != "" {
			tags = append(tags, tag)
		}
	}
	tags = append(tags,
		[2]string{"Termination", rec.Reason},
		[2]string{"PlyCount", fmt.Sprintf("%d", len(rec.Moves))},
	)
	return tags
}

// WriteRecord writes one game as PGN tags followed by numbered moves.
func WriteRecord(w io.Writer, rec *storage.GameRecord, maxLineLength int) {
	for _, tag := range Tags(rec) {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag[0], escapeTagValue(tag[1]))
	}

	// Blank line between tags and moves
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, maxLineLength)
	for ply, text := range rec.Moves {
		if ply%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", ply/2+1))
		}
		ow.Write(longAlgebraic(text, rec.Promotions[ply]))
	}
	ow.Write(ResultString(rec))
	ow.NewLine()

	// Blank line between games
	fmt.Fprintln(w)
}

// longAlgebraic turns "e7 e8" plus a promotion name into "e7e8q".
func longAlgebraic(text, promotion string) string {
	from, to, err := notation.ParseMove(text)
	if err != nil {
		return strings.Join(strings.Fields(text), "")
	}
	s := notation.FormatSquare(from) + notation.FormatSquare(to)
	if kind, err := notation.ParsePromotion(promotion); err == nil {
		s += strings.ToLower(string(kind.Letter()))
	}
	return s
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
