package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gvf/channel"
	"github.com/katalvlaran/gvf/profile"
	"github.com/katalvlaran/gvf/render"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// result builds a small synthetic M1-shaped result without running the
// solver; the renderer depends only on the bundle.
func result() *profile.Result {
	return &profile.Result{
		Params:   channel.Params{Q: 20, B: 10, M: 1.5, N: 0.015, S0: 0.0005},
		Boundary: profile.Boundary{StartDepth: 1.5, StartX: 0, Length: 20},
		Depths:   profile.ReferenceDepths{Normal: 1.17, Critical: 0.71},
		Regime:   profile.Regime{Class: profile.Mild, Label: profile.M1, Direction: profile.Upstream},
		Samples: []profile.Sample{
			{X: 0, Y: 1.5}, {X: -5, Y: 1.498}, {X: -10, Y: 1.496},
			{X: -15, Y: 1.494}, {X: -20, Y: 1.492},
		},
		Stop: profile.StopDomainEnd,
	}
}

// TestFigure_CanvasMatchesOptions checks the drawing context honours
// the requested size.
func TestFigure_CanvasMatchesOptions(t *testing.T) {
	dc, err := render.Figure(result(), render.WithSize(400, 300), render.WithMargin(30))
	require.NoError(t, err)
	assert.Equal(t, 400, dc.Width())
	assert.Equal(t, 300, dc.Height())
}

// TestEncodePNG_WritesValidHeader renders the synthetic profile and
// checks the stream starts with the PNG signature.
func TestEncodePNG_WritesValidHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(result(), &buf, render.WithSize(320, 200)))
	require.Greater(t, buf.Len(), len(pngMagic))
	assert.Equal(t, pngMagic, buf.Bytes()[:len(pngMagic)])
}

// TestSavePNG_WritesFile round-trips through the filesystem.
func TestSavePNG_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	require.NoError(t, render.SavePNG(result(), path, render.WithSize(320, 200)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

// TestFigure_EmptyProfile rejects nil results and empty sample sets.
func TestFigure_EmptyProfile(t *testing.T) {
	_, err := render.Figure(nil)
	assert.ErrorIs(t, err, render.ErrEmptyProfile)

	empty := result()
	empty.Samples = nil
	_, err = render.Figure(empty)
	assert.ErrorIs(t, err, render.ErrEmptyProfile)
}

// TestFigure_SingleSample: a one-sample profile (e.g. a singular
// start) still renders; the x-window is padded around the lone point.
func TestFigure_SingleSample(t *testing.T) {
	one := result()
	one.Samples = one.Samples[:1]
	one.Stop = profile.StopSingularity

	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(one, &buf, render.WithSize(320, 200)))
	assert.Greater(t, buf.Len(), 0)
}

// TestFigure_BadOptions rejects unusable canvas layouts.
func TestFigure_BadOptions(t *testing.T) {
	_, err := render.Figure(result(), render.WithSize(0, 200))
	assert.ErrorIs(t, err, render.ErrBadOption)

	_, err = render.Figure(result(), render.WithSize(100, 100), render.WithMargin(60))
	assert.ErrorIs(t, err, render.ErrBadOption)

	_, err = render.Figure(result(), render.WithTicks(0))
	assert.ErrorIs(t, err, render.ErrBadOption)
}

// TestEncodePNG_Deterministic: identical results encode to identical
// bytes.
func TestEncodePNG_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, render.EncodePNG(result(), &a, render.WithSize(320, 200)))
	require.NoError(t, render.EncodePNG(result(), &b, render.WithSize(320, 200)))
	assert.Equal(t, a.Bytes(), b.Bytes())
}
