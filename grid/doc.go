// Package grid samples the displayed region of the vote-share simplex on
// a regular lattice and classifies every point with the 2CP resolver.
//
// 🚀 What is grid?
//
//	The dot-grid behind the winner map: blue and green sweep
//	[start, stop] in steps of Step, points beyond the simplex (b + g > 1)
//	are skipped, red is implied, and each surviving lattice point is
//	resolved into a Win or Tie. The comparison tolerance is derived from
//	the lattice itself: ε = Step/10.
//
// ✨ Concurrency:
//
//	Every classification is an independent pure call, so the sweep is
//	embarrassingly parallel. Points are enumerated once, then resolved
//	across Workers goroutines via errgroup; results land by index, so
//	output order is deterministic (row-major in blue, then green)
//	regardless of worker count.
//
// ⚙️ Usage:
//
//	flows, _ := core.ComplementaryFlows(0.8, 0.8, 0.7)
//	vp, _ := core.NewViewport(0.2, 0.6)
//	samples, err := grid.Classify(flows, vp, grid.DefaultOptions())
//
// Complexity: O(((stop−start)/step)²) resolver calls, O(1) each.
package grid
