package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/gvf/profile"
)

var (
	// ErrEmptyProfile indicates the result carries no samples to draw.
	ErrEmptyProfile = errors.New("render: result has no samples")

	// ErrBadOption is returned for invalid figure options.
	ErrBadOption = errors.New("render: invalid option supplied")
)

// Option configures the figure via functional arguments.
type Option func(*Options)

// Options holds the figure layout knobs.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	// Margin is the frame inset in pixels, shared by all four sides.
	Margin float64

	// Ticks is the number of tick marks per axis.
	Ticks int
}

// DefaultOptions returns a 1000×600 canvas with a 60 px margin and
// 5 ticks per axis.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 600, Margin: 60, Ticks: 5}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithMargin sets the frame inset in pixels.
func WithMargin(margin float64) Option {
	return func(o *Options) { o.Margin = margin }
}

// WithTicks sets the tick count per axis.
func WithTicks(n int) Option {
	return func(o *Options) { o.Ticks = n }
}

// Figure renders res onto a fresh drawing context and returns it, so
// callers can composite further before encoding.
func Figure(res *profile.Result, opts ...Option) (*gg.Context, error) {
	if res == nil || len(res.Samples) == 0 {
		return nil, ErrEmptyProfile
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	xMin, xMax, yMax := extent(res)
	dc := gg.NewContext(o.Width, o.Height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	// World → pixel transforms. Depth 0 sits on the lower frame edge.
	w, h, m := float64(o.Width), float64(o.Height), o.Margin
	px := func(x float64) float64 { return m + (x-xMin)/(xMax-xMin)*(w-2*m) }
	py := func(y float64) float64 { return h - m - y/yMax*(h-2*m) }

	yn, yc := res.Depths.Normal, res.Depths.Critical

	// Transition zone between the reference depths.
	hi, lo := math.Max(yn, yc), math.Min(yn, yc)
	dc.SetRGBA(1, 1, 0, 0.15)
	dc.DrawRectangle(px(xMin), py(hi), px(xMax)-px(xMin), py(lo)-py(hi))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("render: transition zone: %w", err)
	}

	// Channel bed baseline.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(3)
	dc.DrawLine(px(xMin), py(0), px(xMax), py(0))
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("render: bed line: %w", err)
	}

	// Normal depth: green, dashed.
	dc.SetRGB(0, 0.55, 0)
	dc.SetLineWidth(1.5)
	dc.SetDash(8, 6)
	dc.DrawLine(px(xMin), py(yn), px(xMax), py(yn))
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("render: normal depth line: %w", err)
	}

	// Critical depth: red, dash-dot.
	dc.SetRGB(0.85, 0, 0)
	dc.SetDash(10, 4, 2, 4)
	dc.DrawLine(px(xMin), py(yc), px(xMax), py(yc))
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("render: critical depth line: %w", err)
	}
	dc.ClearDash()

	// Water surface.
	dc.SetRGB(0, 0.2, 0.8)
	dc.SetLineWidth(2)
	dc.MoveTo(px(res.Samples[0].X), py(res.Samples[0].Y))
	for _, s := range res.Samples[1:] {
		dc.LineTo(px(s.X), py(s.Y))
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("render: water surface: %w", err)
	}

	if err := frame(dc, o, xMin, xMax, yMax, px, py); err != nil {
		return nil, err
	}

	return dc, nil
}

// EncodePNG renders res and writes the PNG to w.
func EncodePNG(res *profile.Result, w io.Writer, opts ...Option) error {
	dc, err := Figure(res, opts...)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG renders res and writes the PNG to path.
func SavePNG(res *profile.Result, path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	return EncodePNG(res, f, opts...)
}

// frame draws the plot frame and tick marks.
func frame(dc *gg.Context, o Options, xMin, xMax, yMax float64, px, py func(float64) float64) error {
	w, h, m := float64(o.Width), float64(o.Height), o.Margin

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawRectangle(m, m, w-2*m, h-2*m)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: frame: %w", err)
	}

	const tickLen = 6
	for i := 0; i <= o.Ticks; i++ {
		fx := xMin + (xMax-xMin)*float64(i)/float64(o.Ticks)
		dc.DrawLine(px(fx), h-m, px(fx), h-m+tickLen)
		fy := yMax * float64(i) / float64(o.Ticks)
		dc.DrawLine(m-tickLen, py(fy), m, py(fy))
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: ticks: %w", err)
	}

	return nil
}

// extent computes the world-coordinate window covering the samples and
// both reference depths, with headroom above the tallest feature.
func extent(res *profile.Result) (xMin, xMax, yMax float64) {
	xMin, xMax = res.Samples[0].X, res.Samples[0].X
	yMax = res.Depths.Normal
	if res.Depths.Critical > yMax {
		yMax = res.Depths.Critical
	}
	for _, s := range res.Samples {
		xMin = math.Min(xMin, s.X)
		xMax = math.Max(xMax, s.X)
		yMax = math.Max(yMax, s.Y)
	}
	if xMax == xMin {
		xMin, xMax = xMin-1, xMax+1
	}
	yMax *= 1.15

	return xMin, xMax, yMax
}

// validate rejects layouts the transforms cannot handle.
func (o Options) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d must be positive", ErrBadOption, o.Width, o.Height)
	case o.Margin < 0 || 2*o.Margin >= math.Min(float64(o.Width), float64(o.Height)):
		return fmt.Errorf("%w: margin %g does not fit the canvas", ErrBadOption, o.Margin)
	case o.Ticks < 1:
		return fmt.Errorf("%w: ticks %d must be ≥ 1", ErrBadOption, o.Ticks)
	}

	return nil
}
