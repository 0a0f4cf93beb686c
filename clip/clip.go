package clip

import "math"

// axisTol is the absolute tolerance below which a segment counts as
// vertical or horizontal; the slope form y = m·x + c is unusable there.
const axisTol = 1e-9

// Point is a position in vote-share space: B is the blue share (x-axis),
// G is the green share (y-axis). The red share is implied as 1 - (B + G).
type Point struct {
	B, G float64
}

// Segment is a directed straight piece between two points.
type Segment struct {
	P0, P1 Point
}

// Polyline is a connected sequence of vertices; consecutive vertices are
// joined by straight segments.
type Polyline []Point

// Clip restricts the segment p0→p1 to the viewport square [lo, hi] on
// both axes.
//
// Returns the clipped segment and true, or the zero Segment and false
// when the input lies entirely beyond a single bound. Near-vertical and
// near-horizontal segments are clamped componentwise; general segments
// have each out-of-bounds endpoint recomputed from the line equation
// y = m·x + c against the bound it violates.
func Clip(p0, p1 Point, lo, hi float64) (Segment, bool) {
	// Degenerate orientations clamp exactly: the line equation would
	// divide by (almost) zero.
	if math.Abs(p0.B-p1.B) <= axisTol || math.Abs(p0.G-p1.G) <= axisTol {
		return Segment{clampPoint(p0, lo, hi), clampPoint(p1, lo, hi)}, true
	}

	// Entirely beyond one bound: nothing visible.
	if (p0.B <= lo && p1.B <= lo) || (p0.G <= lo && p1.G <= lo) ||
		(p0.B >= hi && p1.B >= hi) || (p0.G >= hi && p1.G >= hi) {
		return Segment{}, false
	}

	m := (p1.G - p0.G) / (p1.B - p0.B)
	c := p0.G - m*p0.B

	return Segment{clipEnd(p0, m, c, lo, hi), clipEnd(p1, m, c, lo, hi)}, true
}

// clipEnd slides one endpoint along y = m·x + c onto each bound it
// violates, x first, then y, with a final componentwise clamp.
func clipEnd(p Point, m, c, lo, hi float64) Point {
	b, g := p.B, p.G

	if b < lo {
		b, g = lo, m*lo+c
	} else if b > hi {
		b, g = hi, m*hi+c
	}

	if g < lo {
		g, b = lo, (lo-c)/m
	} else if g > hi {
		g, b = hi, (hi-c)/m
	}

	return Point{B: clampVal(b, lo, hi), G: clampVal(g, lo, hi)}
}

// clampPoint clamps both components of p into [lo, hi].
func clampPoint(p Point, lo, hi float64) Point {
	return Point{B: clampVal(p.B, lo, hi), G: clampVal(p.G, lo, hi)}
}

// clampVal constrains v to [lo, hi].
func clampVal(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
