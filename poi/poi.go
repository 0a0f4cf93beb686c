package poi

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/abjago/threepp/core"
	"github.com/abjago/threepp/twocp"
)

// Point is one classified point of interest.
type Point struct {
	// Label is the optional third CSV column, trimmed; empty when absent.
	Label string

	Shares core.Shares
	Result twocp.Result
}

// Read parses CSV rows of the form "blue, green[, label]" from r and
// classifies each under flows f with tolerance eps.
//
// Malformed rows — too few columns, non-numeric shares, values off the
// simplex — are dropped and counted in skipped. A reader-level failure
// (I/O error, broken quoting beyond recovery) returns the points
// gathered so far alongside the error.
func Read(r io.Reader, f core.Flows, eps float64) (pts []Point, skipped int, err error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1 // rows may or may not carry a label
	rd.TrimLeadingSpace = true

	for {
		row, readErr := rd.Read()
		if errors.Is(readErr, io.EOF) {
			return pts, skipped, nil
		}
		var parseErr *csv.ParseError
		if errors.As(readErr, &parseErr) {
			skipped++

			continue
		}
		if readErr != nil {
			return pts, skipped, readErr
		}

		p, ok := classify(row, f, eps)
		if !ok {
			skipped++

			continue
		}
		pts = append(pts, p)
	}
}

// classify turns one CSV row into a classified Point, reporting false
// for any row that cannot be used.
func classify(row []string, f core.Flows, eps float64) (Point, bool) {
	if len(row) < 2 {
		return Point{}, false
	}

	b, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	if err != nil {
		return Point{}, false
	}
	g, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return Point{}, false
	}

	s, err := core.SharesFromBlueGreen(b, g)
	if err != nil {
		return Point{}, false
	}
	res, err := twocp.Resolve(s, f, eps)
	if err != nil {
		return Point{}, false
	}

	var label string
	if len(row) > 2 {
		label = strings.TrimSpace(row[2])
	}

	return Point{Label: label, Shares: s, Result: res}, true
}
