// Package twocp types: the Result of a resolved contest.
package twocp

import (
	"fmt"

	"github.com/abjago/threepp/core"
)

// Result is the outcome of one 2CP contest.
//
// Either Tie is true and the other fields are meaningless, or Tie is
// false and Winner took the contest with the given Margin — the winner's
// 2CP total, always in (0.5, 1].
type Result struct {
	// Winner is the party taking the 2CP contest. Valid only when !Tie.
	Winner core.Party

	// Margin is the winner's 2CP total after redistribution, in (0.5, 1].
	// When the outcome survives a casting-vote perturbation, Margin is the
	// tighter (worst-case) of the two perturbed totals.
	Margin float64

	// Tie reports that no winner can be declared: a dead heat, a near-tie
	// for last place whose exclusion orders disagree, or no strict majority.
	Tie bool
}

// String renders the result for logs and tooltips, e.g. "red 62.5%" or "TIE".
func (r Result) String() string {
	if r.Tie {
		return "TIE"
	}

	return fmt.Sprintf("%s %.1f%%", r.Winner, r.Margin*100)
}
