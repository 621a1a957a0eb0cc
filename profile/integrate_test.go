package profile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gvf/channel"
	"github.com/katalvlaran/gvf/profile"
)

// requireWellFormed asserts the invariants every committed profile
// must satisfy: positive depths outside the singularity band, and
// consecutive positions exactly one step magnitude apart with a
// constant sign.
func requireWellFormed(t *testing.T, p channel.Params, samples []profile.Sample, step float64, band float64) {
	t.Helper()

	require.NotEmpty(t, samples)
	for i, s := range samples {
		require.Greater(t, s.Y, 0.0, "sample %d has non-physical depth", i)

		fr2, err := p.FroudeSquared(s.Y)
		require.NoError(t, err)
		require.GreaterOrEqual(t, math.Abs(1-fr2), band,
			"sample %d sits inside the singularity band", i)

		if i > 0 {
			dx := s.X - samples[i-1].X
			require.InDelta(t, step, math.Abs(dx), 1e-9, "spacing at sample %d", i)
		}
	}
}

// TestIntegrate_M1BackwaterRunsToDomainEnd: subcritical start above
// both reference depths on a mild slope traces an M1 curve upstream
// for the full requested length.
func TestIntegrate_M1BackwaterRunsToDomainEnd(t *testing.T) {
	p := scenario()
	bc := profile.Boundary{StartDepth: 1.5, StartX: 0, Length: 1000}

	samples, stop, err := profile.Integrate(p, bc, profile.Upstream)
	require.NoError(t, err)

	assert.Equal(t, profile.StopDomainEnd, stop)
	assert.Len(t, samples, 201, "start sample plus 1000/5 steps")
	assert.Equal(t, profile.Sample{X: 0, Y: 1.5}, samples[0])
	assert.InDelta(t, -1000, samples[len(samples)-1].X, 1e-9)

	requireWellFormed(t, p, samples, 5, 0.01)

	// M1 depths relax monotonically from the control toward normal
	// depth and never dip below critical depth.
	yc, err := profile.CriticalDepth(p)
	require.NoError(t, err)
	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, samples[i].Y, samples[i-1].Y, "M1 must not steepen at sample %d", i)
		assert.Greater(t, samples[i].Y, yc, "M1 stays subcritical at sample %d", i)
	}
}

// TestIntegrate_M3RisesIntoSingularity: supercritical start below
// critical depth traces an M3 curve downstream until the depth climbs
// into the singularity band around yc.
func TestIntegrate_M3RisesIntoSingularity(t *testing.T) {
	p := scenario()
	bc := profile.Boundary{StartDepth: 0.5, StartX: 0, Length: 1000}

	samples, stop, err := profile.Integrate(p, bc, profile.Downstream)
	require.NoError(t, err)

	assert.Equal(t, profile.StopSingularity, stop)
	requireWellFormed(t, p, samples, 5, 0.01)

	// The run stops before crossing critical depth, so every committed
	// sample stays supercritical.
	yc, err := profile.CriticalDepth(p)
	require.NoError(t, err)
	for i, s := range samples {
		assert.Less(t, s.Y, yc, "sample %d crossed critical depth", i)
		if i > 0 {
			assert.Greater(t, s.X, samples[i-1].X, "downstream run must advance in +x")
		}
	}
	assert.Greater(t, samples[len(samples)-1].Y, samples[0].Y, "M3 depth must rise toward yc")
}

// TestIntegrate_DryBedStop: tracing a supercritical profile against
// its rising direction drains the section; the run stops on the step
// that would commit a dry depth.
func TestIntegrate_DryBedStop(t *testing.T) {
	p := scenario()
	bc := profile.Boundary{StartDepth: 0.5, StartX: 0, Length: 5000}

	samples, stop, err := profile.Integrate(p, bc, profile.Upstream)
	require.NoError(t, err)

	assert.Equal(t, profile.StopDryBed, stop)
	requireWellFormed(t, p, samples, 5, 0.01)
	assert.Less(t, len(samples), 1001, "dry bed must hit before domain end")
}

// TestIntegrate_SingularStart: a boundary depth already inside the
// singularity band terminates before the first step, leaving only the
// starting sample.
func TestIntegrate_SingularStart(t *testing.T) {
	p := scenario()
	yc, err := profile.CriticalDepth(p)
	require.NoError(t, err)

	samples, stop, err := profile.Integrate(p,
		profile.Boundary{StartDepth: yc, StartX: 0, Length: 100},
		profile.Downstream,
	)
	require.NoError(t, err)
	assert.Equal(t, profile.StopSingularity, stop)
	assert.Len(t, samples, 1)
}

// TestIntegrate_StepOptionControlsSpacing: a finer step produces
// proportionally more samples at the same spacing.
func TestIntegrate_StepOptionControlsSpacing(t *testing.T) {
	p := scenario()
	bc := profile.Boundary{StartDepth: 1.5, StartX: 0, Length: 100}

	samples, stop, err := profile.Integrate(p, bc, profile.Upstream, profile.WithStep(1))
	require.NoError(t, err)
	assert.Equal(t, profile.StopDomainEnd, stop)
	assert.Len(t, samples, 101)
	requireWellFormed(t, p, samples, 1, 0.01)
}

// TestIntegrate_InputValidation covers boundary, parameter and option
// rejection.
func TestIntegrate_InputValidation(t *testing.T) {
	p := scenario()
	good := profile.Boundary{StartDepth: 1.5, StartX: 0, Length: 100}

	_, _, err := profile.Integrate(p, profile.Boundary{StartDepth: 0, StartX: 0, Length: 100}, profile.Upstream)
	assert.ErrorIs(t, err, profile.ErrInvalidBoundary)

	_, _, err = profile.Integrate(p, profile.Boundary{StartDepth: 1.5, StartX: 0, Length: -10}, profile.Upstream)
	assert.ErrorIs(t, err, profile.ErrInvalidBoundary)

	bad := p
	bad.N = 0
	_, _, err = profile.Integrate(bad, good, profile.Upstream)
	assert.ErrorIs(t, err, channel.ErrInvalidParams)

	_, _, err = profile.Integrate(p, good, profile.Upstream, profile.WithStep(0))
	assert.ErrorIs(t, err, profile.ErrOptionViolation)

	_, _, err = profile.Integrate(p, good, profile.Upstream, profile.WithSingularityBand(1.5))
	assert.ErrorIs(t, err, profile.ErrOptionViolation)
}
