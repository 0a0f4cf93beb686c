package twocp

import (
	"math"

	"github.com/abjago/threepp/core"
)

// Resolve — 2CP winner resolution
//
// Description:
//
//	Given a vote-share triple and a preference-flow configuration, Resolve
//	determines which party wins the simulated two-candidate-preferred
//	runoff once the third-placed party's votes are redistributed.
//
// Algorithm Outline:
//  1. Define eq(x,y) as |x−y| ≤ ε, lt(x,y) as x < y beyond ε, gt as the
//     transpose. ε is the caller's tolerance (conventionally step/10).
//  2. If all three shares are mutually eq — report Tie unconditionally.
//  3. If exactly one party is strictly third (lt both rivals): split its
//     share between the survivors by its two outgoing flow ratios. The
//     survivor whose total is strictly greater AND a strict majority
//     (gt 0.5) wins with margin = its total. Totals within ε of each
//     other are a Tie; so is the no-majority case, which can only arise
//     when part of the excluded share is exhausted.
//  4. Otherwise, if two parties are tied for last under a strict leader:
//     casting-vote perturbation. Run step 3's contest twice, once per
//     exclusion order, nudging the excluded party down by ε/10 and its
//     twin up by ε/10 (the leader untouched). The leader wins only if it
//     takes both perturbed contests; the reported margin is the tighter
//     of the two, the worst-case guaranteed result.
//  5. Any remaining pattern (e.g. overlapping pairwise near-ties with no
//     strict leader) is a Tie.
//
// Errors:
//   - core.ErrShareRange / core.ErrShareSum — malformed vote shares.
//     Flows are assumed valid (normalised once at build time) and are not
//     re-validated per call.
//
// Complexity: O(1) time, no allocation.

// Resolve returns the 2CP outcome for shares s under flows f with
// comparison tolerance eps.
func Resolve(s core.Shares, f core.Flows, eps float64) (Result, error) {
	// Shares may have been assembled literally rather than through the
	// core constructor; reject malformed input here rather than classify it.
	if _, err := core.NewShares(s.Red, s.Green, s.Blue); err != nil {
		return Result{}, err
	}

	return resolve(s, f, eps), nil
}

// resolve is the pure resolution kernel; inputs are assumed valid.
func resolve(s core.Shares, f core.Flows, eps float64) Result {
	// Total degeneracy: all three shares within ε of each other.
	if eq(s.Red, s.Green, eps) && eq(s.Green, s.Blue, eps) && eq(s.Red, s.Blue, eps) {
		return Result{Tie: true}
	}

	// One party strictly third: a single well-defined exclusion.
	for _, third := range [3]core.Party{core.Red, core.Green, core.Blue} {
		x, y := third.Others()
		if lt(s.Get(third), s.Get(x), eps) && lt(s.Get(third), s.Get(y), eps) {
			return contest(third, s, f, eps)
		}
	}

	// Two parties tied for last under a strict leader: the exclusion
	// order is ambiguous, so demand agreement across both orders.
	for _, leader := range [3]core.Party{core.Red, core.Green, core.Blue} {
		x, y := leader.Others()
		if eq(s.Get(x), s.Get(y), eps) && lt(s.Get(x), s.Get(leader), eps) {
			return castingVote(leader, x, y, s, f, eps)
		}
	}

	// Overlapping pairwise near-ties with no strict leader.
	return Result{Tie: true}
}

// contest excludes third and runs the two-candidate runoff between the
// survivors.
func contest(third core.Party, s core.Shares, f core.Flows, eps float64) Result {
	x, y := third.Others()
	totalX := s.Get(x) + s.Get(third)*f.Out(third, x)
	totalY := s.Get(y) + s.Get(third)*f.Out(third, y)

	switch {
	case eq(totalX, totalY, eps):
		// A marginal redistribution advantage is not a win.
		return Result{Tie: true}
	case totalX > totalY && gt(totalX, 0.5, eps):
		return Result{Winner: x, Margin: totalX}
	case totalY > totalX && gt(totalY, 0.5, eps):
		return Result{Winner: y, Margin: totalY}
	default:
		// Neither survivor reaches a strict majority; possible only when
		// part of the excluded share is exhausted.
		return Result{Tie: true}
	}
}

// castingVote resolves a near-tie for last place between x and y under a
// strict leader. Each tied party is excluded in turn, nudged down by ε/10
// with its twin nudged up by ε/10, simulating "this party goes out first".
// The leader wins only when both exclusion orders hand it the contest.
func castingVote(leader, x, y core.Party, s core.Shares, f core.Flows, eps float64) Result {
	d := eps / 10

	outX := contest(x, nudge(s, x, y, d), f, eps)
	outY := contest(y, nudge(s, y, x, d), f, eps)

	if !outX.Tie && !outY.Tie && outX.Winner == leader && outY.Winner == leader {
		return Result{Winner: leader, Margin: math.Min(outX.Margin, outY.Margin)}
	}

	return Result{Tie: true}
}

// nudge returns s with party down decreased by d and party up increased
// by d, keeping the triple on the simplex.
func nudge(s core.Shares, down, up core.Party, d float64) core.Shares {
	adj := func(p core.Party) float64 {
		switch p {
		case down:
			return s.Get(p) - d
		case up:
			return s.Get(p) + d
		default:
			return s.Get(p)
		}
	}

	return core.Shares{Red: adj(core.Red), Green: adj(core.Green), Blue: adj(core.Blue)}
}

// eq reports x and y approximately equal within eps.
func eq(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}

// lt reports x strictly less than y, beyond eps.
func lt(x, y, eps float64) bool {
	return x < y && !eq(x, y, eps)
}

// gt reports x strictly greater than y, beyond eps.
func gt(x, y, eps float64) bool {
	return lt(y, x, eps)
}
