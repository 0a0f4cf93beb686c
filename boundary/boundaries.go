package boundary

import (
	"math"

	"github.com/abjago/threepp/clip"
	"github.com/abjago/threepp/core"
)

// Boundaries — analytic change-of-winner curves
//
// Description:
//
//	Derives the four polylines along which the 2CP winner changes, for a
//	given preference-flow configuration, clipped to the viewport. The
//	three named boundaries share one parameterised derivation, applied
//	with permuted party roles; the fourth (outer) boundary is fixed.
//
// Derivation (boundary between contenders p and q, excluded party t):
//
//	The 2CP-equality condition is
//	    p + t·out(t,p) = q + t·out(t,q),                        (E)
//	with shares summing to 1. Restricted to "t places third", (E) is a
//	line segment between three characteristic points:
//
//	 1. Edge point — t at its viewport minimum m. Substituting t = m and
//	    q = 1 − m − p into (E):
//	        p = (1 − m·(1 + out(t,p) − out(t,q))) / 2.
//	    m = start for green/blue (axis parties); m = 0 for red, which
//	    yields the flow-independent hapoint (0.5, 0.5).
//
//	 2. Midpoint — the intersection of (E) with the tie line between t
//	    and the contender f its flows favour. Substituting t = f and the
//	    simplex identity into (E):
//	        f = 1 / (3 + out(t,f) − out(t,other)).
//	    The denominator is 3 + d with d ∈ [−1, 1], hence ≥ 2: the only
//	    degeneracy is the balanced split, where the formula itself lands
//	    on the terpoint, and that case is tagged explicitly.
//
//	 3. Terpoint — (1/3, 1/3, 1/3), on every boundary by definition.
//
// Errors:
//   - core.ErrViewport — malformed viewport bounds.
//     Flows are assumed valid (normalised once at build time).
//
// Complexity: O(1) — a fixed number of closed-form evaluations and clips.

// Boundaries returns the four change-of-winner polylines for flows f,
// clipped to vp.
func Boundaries(f core.Flows, vp core.Viewport) (Set, error) {
	if _, err := core.NewViewport(vp.Start, vp.Stop); err != nil {
		return Set{}, err
	}

	ter := clip.Point{B: 1.0 / 3, G: 1.0 / 3}
	lo, hi := vp.Start, vp.Stop

	// Blue excluded: red/green boundary, drawn axis → midpoint → terpoint.
	rgEdge := edgePoint(core.Blue, f, lo)
	rgMid := midPoint(core.Blue, f)
	redGreen := polyline(lo, hi, rgEdge, rgMid, ter)

	// Green excluded: red/blue boundary, drawn terpoint → midpoint → axis.
	rbEdge := edgePoint(core.Green, f, lo)
	rbMid := midPoint(core.Green, f)
	redBlue := polyline(lo, hi, ter, rbMid, rbEdge)

	// Red excluded: blue/green boundary, drawn terpoint → midpoint →
	// hapoint. Red has no axis, so its minimum is 0 and the edge point is
	// the hapoint regardless of flows.
	bgEdge := edgePoint(core.Red, f, 0)
	bgMid := midPoint(core.Red, f)
	blueGreen := polyline(lo, hi, ter, bgMid, bgEdge)

	// The unconditional outer edge b + g = 1, through the hapoint.
	outer := polyline(lo, hi,
		clip.Point{B: 1 - hi, G: hi},
		clip.Point{B: hi, G: 1 - hi},
	)

	return Set{RedGreen: redGreen, RedBlue: redBlue, BlueGreen: blueGreen, Outer: outer}, nil
}

// edgePoint solves the 2CP-equality (E) with the excluded party t pinned
// at its viewport minimum m.
func edgePoint(t core.Party, f core.Flows, m float64) clip.Point {
	p, q := t.Others()
	sp := (1 - m*(1+f.Out(t, p)-f.Out(t, q))) / 2
	sq := 1 - m - sp

	return toPoint(t, m, sp, sq)
}

// midPoint solves (E) on the tie line between t and its favoured
// contender; the balanced regime degenerates to the terpoint.
func midPoint(t core.Party, f core.Flows) clip.Point {
	p, q := t.Others()
	otp, otq := f.Out(t, p), f.Out(t, q)

	switch skewOf(otp, otq) {
	case favourFirst:
		// t ties with p: t = p, q = 1 − 2p.
		sp := 1 / (3 + otp - otq)

		return toPoint(t, sp, sp, 1-2*sp)
	case favourSecond:
		// t ties with q: t = q, p = 1 − 2q.
		sq := 1 / (3 + otq - otp)

		return toPoint(t, sq, 1-2*sq, sq)
	default: // balanced
		return clip.Point{B: 1.0 / 3, G: 1.0 / 3}
	}
}

// toPoint maps the share triple (excluded t holding st, contenders p and
// q holding sp and sq in t.Others() order) onto plot coordinates.
func toPoint(t core.Party, st, sp, sq float64) clip.Point {
	switch t {
	case core.Red: // others: green, blue
		return clip.Point{B: sq, G: sp}
	case core.Green: // others: red, blue
		return clip.Point{B: sq, G: st}
	default: // blue; others: red, green
		return clip.Point{B: st, G: sq}
	}
}

// polyline clips each consecutive segment to [lo, hi] and joins the
// surviving pieces, deduplicating shared endpoints so the result is
// gap-free whenever the underlying curve is.
func polyline(lo, hi float64, pts ...clip.Point) clip.Polyline {
	var pl clip.Polyline
	for i := 0; i+1 < len(pts); i++ {
		seg, ok := clip.Clip(pts[i], pts[i+1], lo, hi)
		if !ok {
			continue
		}
		pl = appendVertex(pl, seg.P0)
		pl = appendVertex(pl, seg.P1)
	}

	return pl
}

// appendVertex extends pl with p unless p coincides with the last vertex;
// shared segment endpoints and degenerate (collapsed) segments would
// otherwise duplicate vertices.
func appendVertex(pl clip.Polyline, p clip.Point) clip.Polyline {
	if n := len(pl); n > 0 && samePoint(pl[n-1], p) {
		return pl
	}

	return append(pl, p)
}

// samePoint treats vertices within float noise of each other as identical.
func samePoint(a, b clip.Point) bool {
	const tol = 1e-12

	return math.Abs(a.B-b.B) <= tol && math.Abs(a.G-b.G) <= tol
}
