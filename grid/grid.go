package grid

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/abjago/threepp/core"
	"github.com/abjago/threepp/twocp"
)

// ErrStep indicates a non-positive sampling step.
var ErrStep = errors.New("grid: step must be positive")

// Options tunes the lattice sweep.
//
// Fields:
//   - Step    — sampling granularity along each axis; the comparison
//     tolerance is derived from it as ε = Step/10.
//   - Workers — number of concurrent resolver goroutines; values below 1
//     fall back to serial execution.
type Options struct {
	Step    float64
	Workers int
}

// DefaultOptions returns the conventional sweep: Step 0.01 (one dot per
// percentage point) across all available CPUs.
func DefaultOptions() Options {
	return Options{Step: 0.01, Workers: runtime.NumCPU()}
}

// Sample is one classified lattice point.
type Sample struct {
	Shares core.Shares
	Result twocp.Result
}

// Classify sweeps the blue/green lattice over vp with granularity
// opts.Step and resolves every point under flows f.
//
// Points beyond the simplex (blue + green > 1) are skipped. Output is
// row-major — blue ascending in the outer dimension, green in the
// inner — and deterministic regardless of worker count: the lattice is
// enumerated serially and results land by index.
//
// Errors: ErrStep for a non-positive step, core.ErrViewport for bad
// bounds; resolver errors cannot occur for lattice-generated shares.
func Classify(f core.Flows, vp core.Viewport, opts Options) ([]Sample, error) {
	if opts.Step <= 0 {
		return nil, ErrStep
	}
	if _, err := core.NewViewport(vp.Start, vp.Stop); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	eps := core.Epsilon(opts.Step)

	points := lattice(vp, opts.Step)
	out := make([]Sample, len(points))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, s := range points {
		i, s := i, s
		eg.Go(func() error {
			res, err := twocp.Resolve(s, f, eps)
			if err != nil {
				return err
			}
			out[i] = Sample{Shares: s, Result: res}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// lattice enumerates the valid share triples of the sweep in row-major
// order. Indices are integral to keep step accumulation error out of the
// lattice itself.
func lattice(vp core.Viewport, step float64) []core.Shares {
	steps := int((vp.Stop-vp.Start)/step + 1e-9)

	var pts []core.Shares
	for i := 0; i <= steps; i++ {
		b := vp.Start + float64(i)*step
		for j := 0; j <= steps; j++ {
			g := vp.Start + float64(j)*step
			if b+g > 1+core.SumTolerance {
				continue
			}
			// Representation error can push the implied red a hair below
			// zero on the b + g = 1 edge; snap it back onto the simplex.
			r := 1 - (b + g)
			if r < 0 {
				r = 0
			}
			pts = append(pts, core.Shares{Red: r, Green: g, Blue: b})
		}
	}

	return pts
}
