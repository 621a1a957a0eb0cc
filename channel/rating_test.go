package channel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gvf/channel"
)

// TestFroudeSquared_KnownValue pins Fr² at y = 1 m for the worked
// channel: Fr² = Q²·T/(g·A³) = 400·13/(9.81·11.5³).
func TestFroudeSquared_KnownValue(t *testing.T) {
	p := scenario()

	fr2, err := p.FroudeSquared(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3485, fr2, 1e-3)
}

// TestManningDischarge_KnownValue pins the uniform-flow rating at
// y = 1 m: (1/0.015)·11.5·R^(2/3)·√0.0005 with R = 11.5/13.60555.
func TestManningDischarge_KnownValue(t *testing.T) {
	p := scenario()

	q, err := p.ManningDischarge(1)
	require.NoError(t, err)
	assert.InDelta(t, 15.33, q, 0.05)
}

// TestManningDischarge_GrowsWithDepth verifies the rating is strictly
// increasing in depth, the property Newton–Raphson leans on for a
// unique normal depth.
func TestManningDischarge_GrowsWithDepth(t *testing.T) {
	p := scenario()

	prev := 0.0
	for i := 1; i <= 40; i++ {
		y := 0.1 * float64(i)
		q, err := p.ManningDischarge(y)
		require.NoError(t, err)
		assert.Greater(t, q, prev, "Manning discharge must grow at y=%g", y)
		prev = q
	}
}

// TestManningDischarge_FlatAndAdverseSlope ensures the uniform-flow
// rating is refused when no positive bed slope exists.
func TestManningDischarge_FlatAndAdverseSlope(t *testing.T) {
	for _, s0 := range []float64{0, -0.001} {
		p := scenario()
		p.S0 = s0

		_, err := p.ManningDischarge(1)
		assert.ErrorIs(t, err, channel.ErrNonPositiveSlope, "S0=%g", s0)
	}
}

// TestFrictionSlope_KnownValue pins Sf at y = 1 m:
// Sf = n²Q²/(A²·R^(4/3)).
func TestFrictionSlope_KnownValue(t *testing.T) {
	p := scenario()

	sf, err := p.FrictionSlope(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.000852, sf, 5e-5)
}

// TestFrictionSlope_ShrinksWithDepth: deeper flow, less friction loss.
func TestFrictionSlope_ShrinksWithDepth(t *testing.T) {
	p := scenario()

	shallow, err := p.FrictionSlope(0.5)
	require.NoError(t, err)
	deep, err := p.FrictionSlope(2.0)
	require.NoError(t, err)

	assert.Greater(t, shallow, deep)
}
