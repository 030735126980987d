// File: read.go
// Role: CSV readers for the conference map and the dated game list.

package football

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Method tags used in error context.
const (
	methodReadConferences = "ReadConferences"
	methodReadGames       = "ReadGames"
)

// Column layout of the games file.
const (
	colDate = iota
	colHome
	colHomeScore
	colVisitor
	colVisitorScore
	colLine
	gameColumns
)

const conferenceColumns = 2

// ErrMalformedRow indicates a CSV row with the wrong column count or an
// unparseable score.
var ErrMalformedRow = errors.New("football: malformed row")

// Game is one played game as listed in the games file.
type Game struct {
	Date         string
	Home         string
	HomeScore    int
	Visitor      string
	VisitorScore int
}

// ReadConferences parses team,conference rows into a team → conference map.
// A team listed twice keeps its last conference.
func ReadConferences(r io.Reader) (map[string]string, error) {
	cr := newReader(r)
	out := make(map[string]string)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodReadConferences, err)
		}
		if len(rec) != conferenceColumns {
			return nil, rowError(methodReadConferences, cr, fmt.Sprintf("%d columns, want %d", len(rec), conferenceColumns))
		}
		out[rec[0]] = rec[1]
	}

	return out, nil
}

// ReadGames parses the games file. The first row is a header and is skipped;
// every other row must have six columns.
func ReadGames(r io.Reader) ([]Game, error) {
	cr := newReader(r)
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: header: %w", methodReadGames, err)
	}

	var games []Game
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodReadGames, err)
		}
		if len(rec) != gameColumns {
			return nil, rowError(methodReadGames, cr, fmt.Sprintf("%d columns, want %d", len(rec), gameColumns))
		}

		home, err := strconv.Atoi(strings.TrimSpace(rec[colHomeScore]))
		if err != nil {
			return nil, rowError(methodReadGames, cr, fmt.Sprintf("home score %q", rec[colHomeScore]))
		}
		visitor, err := strconv.Atoi(strings.TrimSpace(rec[colVisitorScore]))
		if err != nil {
			return nil, rowError(methodReadGames, cr, fmt.Sprintf("visitor score %q", rec[colVisitorScore]))
		}

		games = append(games, Game{
			Date:         rec[colDate],
			Home:         rec[colHome],
			HomeScore:    home,
			Visitor:      rec[colVisitor],
			VisitorScore: visitor,
		})
	}

	return games, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column counts are checked per file layout
	return cr
}

func rowError(method string, cr *csv.Reader, detail string) error {
	line, _ := cr.FieldPos(0)
	return fmt.Errorf("%s: line %d: %s: %w", method, line, detail, ErrMalformedRow)
}
