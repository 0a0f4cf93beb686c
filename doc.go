// Package threepp models three-party-preferred (3PP) electoral contests on
// the vote-share simplex and derives the winner map analytically.
//
// 🚀 What is threepp?
//
//	A pure-Go library that answers one question exactly: given three parties
//	("red", "green" and "blue", with shares summing to 1) and the preference
//	flows of whichever party is excluded, who wins the resulting
//	two-candidate-preferred (2CP) runoff — and where in vote-share space does
//	the answer change?
//
//	  • Winner resolution: case analysis over which party places third,
//	    ε-tolerant tie detection, and a casting-vote perturbation that only
//	    declares a winner when both exclusion orders agree.
//	  • Boundary curves: the change-of-winner loci, derived in closed form
//	    (no sampling, no iterative search) and clipped to a viewport.
//	  • Batch classification: an embarrassingly parallel dot-grid sampler
//	    and a CSV point-of-interest loader for concrete contests.
//
// ✨ Why choose threepp?
//
//   - Deterministic – every call is a pure function of shares and flows
//   - Exact – boundaries come from algebra, not marching over samples
//   - Honest about ties – near-ties for last place are never resolved by
//     an arbitrary exclusion order
//   - Pure Go – no cgo, no runtime deps beyond golang.org/x/sync
//
// Everything is organized under small focused subpackages:
//
//	core/     — Party, Shares, Flows, Viewport: the shared data model
//	twocp/    — the 2CP winner resolver
//	boundary/ — analytic change-of-winner curves
//	clip/     — viewport line clipping
//	grid/     — parallel dot-grid classification
//	poi/      — CSV point-of-interest ingestion
//
// Quick ASCII picture (blue on the x-axis, green on the y-axis, red implied):
//
//	g ↑ ╲          green wins
//	  │  ╲   ┌─ boundaries
//	  │   ╲ ╱
//	  │ red ╳──
//	  │    ╱ ╲    blue wins
//	  └──────────→ b
//
// Dive into the per-package docs for contracts, derivations and examples.
//
//	go get github.com/abjago/threepp
package threepp
