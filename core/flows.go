package core

import "math"

// Flows is the canonical preference-flow configuration: six directed
// ratios, one per ordered pair of parties. Out(p, q) is the fraction of
// p's votes that transfer to q when p is excluded from the contest.
//
// The canonical model is "independent mode": the two outgoing ratios of a
// source party need not sum to 1, and any shortfall models exhausted
// (non-transferable) preferences. Complementary mode — one ratio per
// source, the other implied as 1-x — is the special case produced by
// ComplementaryFlows.
//
// Normalisation happens exactly once, inside the constructors. Downstream
// consumers (the resolver, the boundary generator) assume a valid Flows
// and never re-validate per call.
type Flows struct {
	RedToGreen, RedToBlue   float64
	GreenToRed, GreenToBlue float64
	BlueToRed, BlueToGreen  float64
}

// NewFlows builds an independent-mode configuration from all six ratios.
//
// Each ratio must lie in [0, 1] (ErrFlowRange). If a source party's two
// outgoing ratios sum above 1, both are scaled down by their sum so the
// pair sums to exactly 1; pairs summing to 1 or less are kept as given
// (the remainder is exhausted preferences). Ratios of exactly 0 or 1 are
// ordinary values — total preference concentration is legitimate.
func NewFlows(redToGreen, redToBlue, greenToRed, greenToBlue, blueToRed, blueToGreen float64) (Flows, error) {
	ratios := [6]float64{redToGreen, redToBlue, greenToRed, greenToBlue, blueToRed, blueToGreen}
	for _, v := range ratios {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return Flows{}, ErrFlowRange
		}
	}

	redToGreen, redToBlue = normalisePair(redToGreen, redToBlue)
	greenToRed, greenToBlue = normalisePair(greenToRed, greenToBlue)
	blueToRed, blueToGreen = normalisePair(blueToRed, blueToGreen)

	return Flows{
		RedToGreen: redToGreen, RedToBlue: redToBlue,
		GreenToRed: greenToRed, GreenToBlue: greenToBlue,
		BlueToRed: blueToRed, BlueToGreen: blueToGreen,
	}, nil
}

// ComplementaryFlows builds a configuration from one ratio per source
// party, with the outflow to the third party implied as 1-x: a party's
// preferences split between exactly two destinations with nothing
// exhausted. This recovers the classic three-knob model
// (red→green, green→red, blue→red).
func ComplementaryFlows(redToGreen, greenToRed, blueToRed float64) (Flows, error) {
	for _, v := range [3]float64{redToGreen, greenToRed, blueToRed} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return Flows{}, ErrFlowRange
		}
	}

	return Flows{
		RedToGreen: redToGreen, RedToBlue: 1 - redToGreen,
		GreenToRed: greenToRed, GreenToBlue: 1 - greenToRed,
		BlueToRed: blueToRed, BlueToGreen: 1 - blueToRed,
	}, nil
}

// Out returns the flow ratio from party p to party q. Out(p, p) is 0:
// an excluded party cannot transfer votes to itself.
func (f Flows) Out(p, q Party) float64 {
	switch {
	case p == Red && q == Green:
		return f.RedToGreen
	case p == Red && q == Blue:
		return f.RedToBlue
	case p == Green && q == Red:
		return f.GreenToRed
	case p == Green && q == Blue:
		return f.GreenToBlue
	case p == Blue && q == Red:
		return f.BlueToRed
	case p == Blue && q == Green:
		return f.BlueToGreen
	default:
		return 0
	}
}

// normalisePair scales (x, y) by their sum when it exceeds 1, so that a
// source party never transfers more votes than it holds.
func normalisePair(x, y float64) (float64, float64) {
	if sum := x + y; sum > 1 {
		return x / sum, y / sum
	}

	return x, y
}
