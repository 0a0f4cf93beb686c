// Package boundary types: the Set of named polylines and the flow-skew
// regime tags driving the midpoint case analysis.
package boundary

import "github.com/abjago/threepp/clip"

// Set holds the four change-of-winner polylines for one configuration,
// already clipped to the viewport. Vertices are in vote-share space
// (x = blue, y = green).
type Set struct {
	// RedGreen separates the red-wins and green-wins regions
	// (blue excluded). Runs axis edge → midpoint → terpoint.
	RedGreen clip.Polyline

	// RedBlue separates the red-wins and blue-wins regions
	// (green excluded). Runs terpoint → midpoint → axis edge.
	RedBlue clip.Polyline

	// BlueGreen separates the blue-wins and green-wins regions
	// (red excluded). Runs terpoint → midpoint → hapoint.
	BlueGreen clip.Polyline

	// Outer is the unconditional simplex edge b + g = 1 through the
	// hapoint; it does not depend on preference flows.
	Outer clip.Polyline
}

// skew tags the midpoint regime of one boundary: which contender the
// excluded party's preferences favour. The equality curve leaves the
// terpoint toward the tie line with the favoured contender, and the sign
// flip between regimes is discontinuous — hence a closed tagged set
// rather than nested conditionals.
type skew int

const (
	// balanced: the excluded party splits evenly; the midpoint
	// degenerates onto the terpoint.
	balanced skew = iota
	// favourFirst: the excluded party favours the first contender
	// (canonical party order); the midpoint lies on their mutual tie line.
	favourFirst
	// favourSecond: the transpose case.
	favourSecond
)

// skewOf classifies the two outgoing ratios of the excluded party.
// Comparison is exact: the regime is a property of the configuration,
// not of sampled data, so no ε applies.
func skewOf(outFirst, outSecond float64) skew {
	switch {
	case outFirst > outSecond:
		return favourFirst
	case outSecond > outFirst:
		return favourSecond
	default:
		return balanced
	}
}
