// Package boundary derives the change-of-winner curves of a three-party
// contest analytically, as clipped polylines across the vote-share simplex.
//
// 🚀 What is a boundary here?
//
//	For each pair of parties there is a 2CP-equality curve: the locus
//	where their totals after redistribution are exactly equal, restricted
//	to the region where the remaining party actually places third. Each
//	such curve is piecewise-linear with up to three characteristic points:
//
//	  • an edge point, where the excluded party's share reaches its
//	    viewport minimum (the axis for green/blue; zero — the hapoint
//	    (0.5, 0.5) — for red);
//	  • a midpoint, the closed-form intersection of the equality line
//	    with the tie line between the excluded party and whichever
//	    contender its preferences favour;
//	  • the terpoint (1/3, 1/3, 1/3), which lies on every boundary since
//	    all three parties are tied there.
//
//	A fourth, unconditional boundary runs along the simplex outer edge
//	b + g = 1 through the hapoint; it does not depend on flows.
//
// ✨ Why closed form?
//
//   - Exactness: no dense sampling, no marching, no iteration.
//   - The case splits are genuine: the equality curve's limiting corner
//     flips discontinuously with the sign of the controlling flow skew,
//     so the regimes are enumerated as a small tagged set rather than
//     guarded generically. Denominators take the form 3 + d with
//     d ∈ [−1, 1] and can never vanish.
//
// ⚙️ Usage:
//
//	flows, _ := core.ComplementaryFlows(0.8, 0.8, 0.7)
//	vp, _ := core.NewViewport(0.2, 0.6)
//	set, err := boundary.Boundaries(flows, vp)
//	// set.RedGreen, set.RedBlue, set.BlueGreen, set.Outer
//
// All three named boundaries are produced by one parameterised routine
// instantiated with permuted party roles, so they cannot drift apart.
// Invoked once per configuration; cost is a fixed handful of closed-form
// evaluations.
package boundary
