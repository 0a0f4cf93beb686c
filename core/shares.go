package core

import "math"

// Shares is a point on the vote-share simplex: three first-preference
// shares with Red + Green + Blue == 1 (within SumTolerance).
//
// A Shares value is immutable per evaluation; build a fresh one per call.
type Shares struct {
	Red, Green, Blue float64
}

// NewShares validates and returns the vote-share triple (red, green, blue).
//
// Validation is strict: each component must lie in [0, 1] (ErrShareRange)
// and the three must sum to 1 within SumTolerance (ErrShareSum). The
// constructor never renormalises — a caller holding shares that "almost"
// sum to 1 must decide for itself how to repair them.
func NewShares(red, green, blue float64) (Shares, error) {
	for _, v := range [3]float64{red, green, blue} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return Shares{}, ErrShareRange
		}
	}
	if math.Abs(red+green+blue-1) > SumTolerance {
		return Shares{}, ErrShareSum
	}

	return Shares{Red: red, Green: green, Blue: blue}, nil
}

// SharesFromBlueGreen derives the redundant red component from the two
// plotted axes: red = 1 - (blue + green). The derived triple is validated
// exactly as in NewShares.
func SharesFromBlueGreen(blue, green float64) (Shares, error) {
	return NewShares(1-(blue+green), green, blue)
}

// Get returns the share held by party p.
func (s Shares) Get(p Party) float64 {
	switch p {
	case Red:
		return s.Red
	case Green:
		return s.Green
	default:
		return s.Blue
	}
}
