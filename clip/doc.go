// Package clip restricts line segments in vote-share space to the
// displayed viewport square.
//
// 🚀 What is clip?
//
//	A single pure geometric function, Clip, plus the Point/Segment/Polyline
//	types the boundary generator builds its output from. Coordinates are
//	vote shares, not pixels: B is the blue share (x-axis), G is the green
//	share (y-axis), and the viewport is the axis-aligned square
//	[lo, hi] × [lo, hi].
//
// ✨ Behaviour:
//
//   - Near-vertical and near-horizontal segments are clamped directly —
//     their line equation degenerates, and clamping is exact for them.
//   - A segment lying entirely beyond one bound is rejected (empty result).
//   - Otherwise each endpoint that violates a bound is slid along the
//     segment's line y = m·x + c to the violated bound.
//
// ⚙️ Usage:
//
//	seg, ok := clip.Clip(p0, p1, vp.Start, vp.Stop)
//	if ok {
//	  // seg lies within the viewport
//	}
//
// No polymorphism, no state: Clip is safe to call from any goroutine.
package clip
