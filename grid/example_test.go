package grid_test

import (
	"fmt"

	"github.com/abjago/threepp/core"
	"github.com/abjago/threepp/grid"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleClassify — sweep a coarse lattice and tally the outcomes.
//
// Scenario:
//
//	Reference flows over the [0.2, 0.6] window at step 0.1. Each lattice
//	point resolves to a winner (or a tie near the boundaries); the tally
//	shows the three winner regions meeting inside the window.
// ////////////////////////////////////////////////////////////////////////////
func ExampleClassify() {
	flows, _ := core.ComplementaryFlows(0.8, 0.8, 0.7)
	vp, _ := core.NewViewport(0.2, 0.6)

	samples, _ := grid.Classify(flows, vp, grid.Options{Step: 0.1, Workers: 4})

	tally := make(map[string]int)
	for _, s := range samples {
		if s.Result.Tie {
			tally["tie"]++

			continue
		}
		tally[s.Result.Winner.String()]++
	}

	fmt.Println("samples:", len(samples))
	fmt.Println("red:", tally["red"], "green:", tally["green"], "blue:", tally["blue"], "ties:", tally["tie"])

	// Output:
	// samples: 22
	// red: 6 green: 7 blue: 6 ties: 3
}
