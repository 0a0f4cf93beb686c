// Package twocp resolves a three-party-preferred vote-share triple into a
// simulated two-candidate-preferred (2CP) winner.
//
// 🚀 What is a 2CP contest?
//
//	A majority-rule runoff is only meaningful between two candidates, so
//	the third-placed party must be excluded first and its votes
//	redistributed according to its preference-flow ratios. Only then can
//	one of the survivors claim a majority.
//
//	  Resolve(shares, flows, ε) → Result
//
//	  • If one party is strictly third (trails both rivals by more than ε),
//	    its share is split between the survivors by its two outgoing flow
//	    ratios; the survivor with the strictly larger total and a strict
//	    majority wins, with margin = its total.
//	  • If two parties are tied for last within ε, the identity of "who is
//	    excluded first" is ambiguous. The resolver simulates both exclusion
//	    orders (casting-vote perturbation) and declares the leader the
//	    winner only when both orders agree, reporting the tighter margin.
//	  • If all three shares are mutually within ε, the contest is a Tie.
//
// ✨ Guarantees:
//
//   - Pure and stateless: safe to batch across any number of goroutines.
//   - Any Win carries a margin in (0.5, 1].
//   - Symmetric: consistently relabeling parties relabels the winner and
//     preserves the margin.
//   - Never declares a winner from a marginal redistribution advantage:
//     survivor totals within ε of each other are a Tie.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/abjago/threepp/core"
//	  "github.com/abjago/threepp/twocp"
//	)
//
//	flows, _ := core.ComplementaryFlows(0.8, 0.8, 0.7)
//	s, _ := core.NewShares(0.45, 0.30, 0.25)
//	res, err := twocp.Resolve(s, flows, core.Epsilon(0.01))
//	// res.Winner == core.Red, res.Margin == 0.625
//
// Complexity: O(1) per call — a fixed handful of comparisons and at most
// two redistribution contests.
package twocp
