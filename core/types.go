// This file declares Party, the sentinel errors shared by the core
// constructors, and the Epsilon tolerance rule.
//
// Errors:
//
//	ErrShareRange - a vote share lies outside [0, 1].
//	ErrShareSum   - the three vote shares do not sum to 1.
//	ErrFlowRange  - a preference-flow ratio lies outside [0, 1].
//	ErrViewport   - viewport bounds are not 0 ≤ start < stop ≤ 1.

package core

import "errors"

// Sentinel errors for core constructors.
var (
	// ErrShareRange indicates a vote share outside the [0, 1] interval.
	ErrShareRange = errors.New("core: vote share outside [0, 1]")

	// ErrShareSum indicates vote shares that do not sum to 1 within SumTolerance.
	ErrShareSum = errors.New("core: vote shares must sum to 1")

	// ErrFlowRange indicates a preference-flow ratio outside the [0, 1] interval.
	ErrFlowRange = errors.New("core: preference-flow ratio outside [0, 1]")

	// ErrViewport indicates viewport bounds violating 0 ≤ start < stop ≤ 1.
	ErrViewport = errors.New("core: viewport requires 0 ≤ start < stop ≤ 1")
)

// SumTolerance is the absolute tolerance used when checking that three
// vote shares sum to 1. It absorbs float64 representation error only;
// it is not the contest tolerance ε (see Epsilon).
const SumTolerance = 1e-9

// Party identifies one of the three contestants.
//
// The colour names are positional, not political: blue is conventionally
// drawn on the x-axis, green on the y-axis, and red is the implied
// remainder (red = 1 - green - blue).
type Party int

const (
	// Red is the implied-remainder party (not drawn on an axis).
	Red Party = iota
	// Green is the y-axis party.
	Green
	// Blue is the x-axis party.
	Blue
)

// String returns the lowercase colour name of p, or "unknown" for
// out-of-range values.
func (p Party) String() string {
	switch p {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Others returns the two parties that are not p, in canonical
// Red < Green < Blue order.
func (p Party) Others() (Party, Party) {
	switch p {
	case Red:
		return Green, Blue
	case Green:
		return Red, Blue
	default:
		return Red, Green
	}
}

// Epsilon derives the contest comparison tolerance ε from the sampling
// granularity of the surrounding grid: ε = step/10.
//
// Two totals within ε of each other are treated as tied; a party is only
// "strictly third" when it trails both rivals by more than ε. Callers that
// classify points off any grid may pass whatever ε suits their data.
func Epsilon(step float64) float64 {
	return step / 10
}
