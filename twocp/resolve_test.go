package twocp_test

import (
	"testing"

	"github.com/abjago/threepp/core"
	"github.com/abjago/threepp/twocp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eps matches the reference configuration: grid step 0.01, ε = step/10.
const eps = 0.001

// refFlows returns the reference configuration used throughout:
// red→green 0.8, red→blue 0.2, green→red 0.8, green→blue 0.2,
// blue→red 0.7, blue→green 0.3.
func refFlows(t *testing.T) core.Flows {
	t.Helper()
	f, err := core.ComplementaryFlows(0.8, 0.8, 0.7)
	require.NoError(t, err)

	return f
}

func shares(t *testing.T, r, g, b float64) core.Shares {
	t.Helper()
	s, err := core.NewShares(r, g, b)
	require.NoError(t, err)

	return s
}

// TestResolve_BlueThird verifies the straightforward exclusion: blue is
// strictly third, its votes split 0.7/0.3, and red takes the runoff at
// 0.45 + 0.25·0.7 = 0.625.
func TestResolve_BlueThird(t *testing.T) {
	res, err := twocp.Resolve(shares(t, 0.45, 0.30, 0.25), refFlows(t), eps)
	require.NoError(t, err)
	require.False(t, res.Tie)
	assert.Equal(t, core.Red, res.Winner)
	assert.InDelta(t, 0.625, res.Margin, 1e-12)
}

// TestResolve_RedThird verifies the symmetric case with red excluded:
// green gets 0.8 of red's 0.10, blue gets 0.2.
func TestResolve_RedThird(t *testing.T) {
	res, err := twocp.Resolve(shares(t, 0.10, 0.48, 0.42), refFlows(t), eps)
	require.NoError(t, err)
	require.False(t, res.Tie)
	assert.Equal(t, core.Green, res.Winner)
	assert.InDelta(t, 0.56, res.Margin, 1e-12, "0.48 + 0.8·0.10")
}

// TestResolve_GreenThird verifies green's exclusion handing the contest to red.
func TestResolve_GreenThird(t *testing.T) {
	res, err := twocp.Resolve(shares(t, 0.40, 0.22, 0.38), refFlows(t), eps)
	require.NoError(t, err)
	require.False(t, res.Tie)
	assert.Equal(t, core.Red, res.Winner)
	assert.InDelta(t, 0.576, res.Margin, 1e-12, "0.40 + 0.8·0.22")
}

// TestResolve_Terpoint verifies the total degeneracy: all three shares
// within ε of 1/3 is an unconditional Tie.
func TestResolve_Terpoint(t *testing.T) {
	res, err := twocp.Resolve(shares(t, 1.0/3, 1.0/3, 1.0/3), refFlows(t), eps)
	require.NoError(t, err)
	assert.True(t, res.Tie)

	// Slightly off-centre but still mutually within ε.
	res, err = twocp.Resolve(shares(t, 1.0/3+0.0004, 1.0/3-0.0004, 1.0/3), refFlows(t), eps)
	require.NoError(t, err)
	assert.True(t, res.Tie)
}

// TestResolve_CastingVote verifies the ambiguous-exclusion path: red and
// green tied for last at 0.20 with blue leading. Blue wins under both
// exclusion orders, so the outcome is a robust blue win.
func TestResolve_CastingVote(t *testing.T) {
	res, err := twocp.Resolve(shares(t, 0.20, 0.20, 0.60), refFlows(t), eps)
	require.NoError(t, err)
	require.False(t, res.Tie, "blue must win under both exclusion orders")
	assert.Equal(t, core.Blue, res.Winner)
	// Either order: blue ≈ 0.60 + 0.2·(0.20 ∓ ε/10); worst case with the
	// excluded share nudged down.
	assert.InDelta(t, 0.63998, res.Margin, 1e-9)
}

// TestResolve_CastingVoteDisagreement verifies that when the two
// exclusion orders crown different parties, no winner is declared.
func TestResolve_CastingVoteDisagreement(t *testing.T) {
	// Green and blue tied for last at 0.265, red leading at 0.47 — but
	// flows are built so the surviving tied party overtakes red either
	// way: whoever is excluded hands everything to the other tied party.
	f, err := core.NewFlows(0.8, 0.2, 0, 1, 0, 1)
	require.NoError(t, err)

	res, err := twocp.Resolve(shares(t, 0.34, 0.33, 0.33), f, eps)
	require.NoError(t, err)
	assert.True(t, res.Tie, "disagreeing exclusion orders must yield a tie")
}

// TestResolve_DeadHeatAfterRedistribution verifies that survivor totals
// within ε of each other are a Tie, not a marginal win.
func TestResolve_DeadHeatAfterRedistribution(t *testing.T) {
	// Blue third with an even split: red 0.40+0.10, green 0.40+0.10.
	f, err := core.NewFlows(0.8, 0.2, 0.8, 0.2, 0.5, 0.5)
	require.NoError(t, err)

	res, err := twocp.Resolve(shares(t, 0.40, 0.40, 0.20), f, eps)
	require.NoError(t, err)
	assert.True(t, res.Tie)
}

// TestResolve_NoMajorityWithExhausted verifies the exhausted-preference
// regime: when most of the excluded share transfers to nobody, neither
// survivor may reach a majority, and no winner is declared.
func TestResolve_NoMajorityWithExhausted(t *testing.T) {
	// Blue third with 0.30; only 10% of it transfers anywhere.
	f, err := core.NewFlows(0.8, 0.2, 0.8, 0.2, 0.1, 0.0)
	require.NoError(t, err)

	res, err := twocp.Resolve(shares(t, 0.38, 0.32, 0.30), f, eps)
	require.NoError(t, err)
	assert.True(t, res.Tie, "0.38 + 0.03 = 0.41 is no majority")
}

// TestResolve_TotalConcentration verifies that flow ratios of exactly 0
// and 1 are ordinary values.
func TestResolve_TotalConcentration(t *testing.T) {
	// Everything blue holds flows to green.
	f, err := core.NewFlows(0.5, 0.5, 0.5, 0.5, 0.0, 1.0)
	require.NoError(t, err)

	res, err := twocp.Resolve(shares(t, 0.40, 0.35, 0.25), f, eps)
	require.NoError(t, err)
	require.False(t, res.Tie)
	assert.Equal(t, core.Green, res.Winner)
	assert.InDelta(t, 0.60, res.Margin, 1e-12, "0.35 + 1.0·0.25")
}

// TestResolve_MarginRange sweeps the displayed simplex region and checks
// the core invariant: every Win carries a margin in (0.5, 1].
func TestResolve_MarginRange(t *testing.T) {
	f := refFlows(t)
	for b := 0.0; b <= 1.0; b += 0.01 {
		for g := 0.0; g+b <= 1.0; g += 0.01 {
			s, err := core.SharesFromBlueGreen(b, g)
			if err != nil {
				continue // rounding pushed red negative at the edge
			}
			res, err := twocp.Resolve(s, f, eps)
			require.NoError(t, err)
			if res.Tie {
				continue
			}
			assert.Greater(t, res.Margin, 0.5, "win at b=%.2f g=%.2f", b, g)
			assert.LessOrEqual(t, res.Margin, 1.0, "win at b=%.2f g=%.2f", b, g)
		}
	}
}

// TestResolve_Symmetry verifies relabeling invariance: rotating all three
// parties (and their flows) rotates the winner and preserves the margin.
func TestResolve_Symmetry(t *testing.T) {
	// Asymmetric flows so the rotation actually moves information around.
	f, err := core.NewFlows(0.7, 0.3, 0.6, 0.4, 0.2, 0.8)
	require.NoError(t, err)
	// Rotation red→green→blue→red: the party formerly called red is now
	// called green, and so on. A rotated flow a→b equals the original flow
	// between the pre-images of a and b.
	rot := map[core.Party]core.Party{core.Red: core.Green, core.Green: core.Blue, core.Blue: core.Red}
	rotFlows, err := core.NewFlows(
		f.Out(core.Blue, core.Red),    // red→green   was blue→red
		f.Out(core.Blue, core.Green),  // red→blue    was blue→green
		f.Out(core.Red, core.Blue),    // green→red   was red→blue
		f.Out(core.Red, core.Green),   // green→blue  was red→green
		f.Out(core.Green, core.Blue),  // blue→red    was green→blue
		f.Out(core.Green, core.Red),   // blue→green  was green→red
	)
	require.NoError(t, err)

	cases := []core.Shares{
		shares(t, 0.45, 0.30, 0.25),
		shares(t, 0.10, 0.48, 0.42),
		shares(t, 0.20, 0.20, 0.60),
		shares(t, 0.50, 0.27, 0.23),
	}
	for _, s := range cases {
		// Rotated shares: the new holder of rot[p] receives p's share.
		rs := core.Shares{Red: s.Blue, Green: s.Red, Blue: s.Green}

		orig, err := twocp.Resolve(s, f, eps)
		require.NoError(t, err)
		rotated, err := twocp.Resolve(rs, rotFlows, eps)
		require.NoError(t, err)

		assert.Equal(t, orig.Tie, rotated.Tie, "shares %+v", s)
		if !orig.Tie {
			assert.Equal(t, rot[orig.Winner], rotated.Winner, "shares %+v", s)
			assert.InDelta(t, orig.Margin, rotated.Margin, 1e-12, "shares %+v", s)
		}
	}
}

// TestResolve_Monotonicity verifies that with red in third place and
// green/blue held fixed, raising red→green never lowers green's 2CP total.
func TestResolve_Monotonicity(t *testing.T) {
	s := shares(t, 0.15, 0.44, 0.41)
	prev := -1.0
	for i := 0; i <= 20; i++ {
		rg := float64(i) / 20
		f, err := core.NewFlows(rg, 1-rg, 0.8, 0.2, 0.7, 0.3)
		require.NoError(t, err)
		res, err := twocp.Resolve(s, f, eps)
		require.NoError(t, err)
		if res.Tie || res.Winner != core.Green {
			continue
		}
		assert.GreaterOrEqual(t, res.Margin, prev, "green total must not decrease as red→green rises (rg=%.2f)", rg)
		prev = res.Margin
	}
}

// TestResolve_InvalidShares verifies the InvalidInput condition: malformed
// triples are rejected, never renormalised or classified.
func TestResolve_InvalidShares(t *testing.T) {
	f := refFlows(t)

	_, err := twocp.Resolve(core.Shares{Red: 0.5, Green: 0.4, Blue: 0.3}, f, eps)
	assert.ErrorIs(t, err, core.ErrShareSum)

	_, err = twocp.Resolve(core.Shares{Red: -0.2, Green: 0.6, Blue: 0.6}, f, eps)
	assert.ErrorIs(t, err, core.ErrShareRange)
}

// TestResult_String verifies the display rendering.
func TestResult_String(t *testing.T) {
	assert.Equal(t, "TIE", twocp.Result{Tie: true}.String())
	assert.Equal(t, "red 62.5%", twocp.Result{Winner: core.Red, Margin: 0.625}.String())
}
