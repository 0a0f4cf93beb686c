package poi_test

import (
	"fmt"
	"strings"

	"github.com/abjago/threepp/core"
	"github.com/abjago/threepp/poi"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleRead — classify a hand-maintained CSV of contests.
//
// Scenario:
//
//	Two labelled contests under the reference preference flows. The second
//	row is deliberately broken and is dropped, not fatal.
// ////////////////////////////////////////////////////////////////////////////
func ExampleRead() {
	rows := strings.Join([]string{
		"0.25, 0.30, Wills 2022",
		"oops, 0.30, typo row",
		"0.60, 0.20, Brisbane 2022",
	}, "\n")

	flows, _ := core.ComplementaryFlows(0.8, 0.8, 0.7)
	pts, skipped, _ := poi.Read(strings.NewReader(rows), flows, core.Epsilon(0.01))

	for _, p := range pts {
		fmt.Printf("%s: %s\n", p.Label, p.Result)
	}
	fmt.Println("skipped:", skipped)

	// Output:
	// Wills 2022: red 62.5%
	// Brisbane 2022: blue 64.0%
	// skipped: 1
}
