package core

// Viewport is the sub-square of the simplex actually displayed: blue and
// green both range over [Start, Stop]. It is consumed by the boundary
// generator (via the line clipper) and by the grid sampler.
type Viewport struct {
	Start, Stop float64
}

// NewViewport validates and returns viewport bounds. Bounds must satisfy
// 0 ≤ start < stop ≤ 1 (ErrViewport).
func NewViewport(start, stop float64) (Viewport, error) {
	if start < 0 || stop > 1 || start >= stop {
		return Viewport{}, ErrViewport
	}

	return Viewport{Start: start, Stop: stop}, nil
}
