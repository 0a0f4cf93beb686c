// Package core defines the shared data model for three-party-preferred
// analysis: parties, vote-share triples, preference-flow configurations,
// and the display viewport.
//
// 🚀 What lives here?
//
//	Every other threepp package consumes exactly these types:
//	  • Party    — Red, Green, Blue
//	  • Shares   — a point on the vote-share simplex (sum == 1)
//	  • Flows    — six directed preference-flow ratios, normalised once
//	  • Viewport — the [start, stop] square of the simplex on display
//
// ✨ Design rules:
//
//   - Values are immutable once built; constructors validate, methods don't.
//   - Invalid input is rejected with a sentinel error, never renormalised.
//   - Tolerances are explicit: Epsilon(step) derives the comparison
//     tolerance from the sampling granularity, and callers pass it around
//     as a plain parameter. No globals.
//
// ⚙️ Usage:
//
//	import "github.com/abjago/threepp/core"
//
//	flows, err := core.ComplementaryFlows(0.8, 0.8, 0.7)
//	if err != nil { ... }
//	s, err := core.SharesFromBlueGreen(0.25, 0.30)
//	if err != nil { ... }
//	eps := core.Epsilon(0.01)
//
// See shares.go for the simplex invariants and flows.go for the two
// configuration modes (complementary vs independent) and their
// reconciliation.
package core
