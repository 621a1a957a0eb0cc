package profile

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gvf/channel"
)

var (
	// ErrNoNormalDepth indicates normal depth was requested for a flat
	// or adverse bed slope, where uniform flow cannot exist.
	ErrNoNormalDepth = errors.New("profile: normal depth undefined for non-positive bed slope")

	// ErrAmbiguousRegime indicates the regime cannot be classified,
	// typically because the normal depth is undefined or non-finite.
	ErrAmbiguousRegime = errors.New("profile: flow regime cannot be classified")

	// ErrInvalidBoundary indicates a non-positive starting depth or
	// simulation length.
	ErrInvalidBoundary = errors.New("profile: invalid boundary condition")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("profile: invalid option supplied")
)

// SlopeClass labels the channel slope by comparing normal and critical
// depth.
type SlopeClass int

const (
	// Mild slope: yn > yc; uniform flow is subcritical.
	Mild SlopeClass = iota
	// Steep slope: yn < yc; uniform flow is supercritical.
	Steep
	// Critical slope: yn ≈ yc within tolerance. The normal depth is
	// unstable here and profiles hug the common reference depth.
	Critical
)

// String implements fmt.Stringer.
func (s SlopeClass) String() string {
	switch s {
	case Mild:
		return "MILD"
	case Steep:
		return "STEEP"
	case Critical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("SlopeClass(%d)", int(s))
	}
}

// Direction is the profile integration direction, derived from the
// starting depth alone: subcritical boundaries are controlled from
// downstream (trace Upstream), supercritical from upstream (trace
// Downstream).
type Direction int

const (
	// Downstream advances with a positive step.
	Downstream Direction = iota
	// Upstream advances with a negative step.
	Upstream
)

// Sign returns the step sign for the direction: +1 for Downstream,
// −1 for Upstream.
func (d Direction) Sign() float64 {
	if d == Upstream {
		return -1
	}

	return 1
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Upstream {
		return "UPSTREAM"
	}

	return "DOWNSTREAM"
}

// Label is the classical GVF profile label derived from the slope
// class and the zone of the starting depth relative to {yn, yc}.
type Label string

// The nine trapezoidal-channel profile labels. The digit is the zone:
// 1 above both reference depths, 2 between them, 3 below both. On a
// critical slope the reference depths coincide, so zone 2 collapses to
// the equality band (uniform critical flow, unstable).
const (
	M1 Label = "M1"
	M2 Label = "M2"
	M3 Label = "M3"
	S1 Label = "S1"
	S2 Label = "S2"
	S3 Label = "S3"
	C1 Label = "C1"
	C2 Label = "C2"
	C3 Label = "C3"
)

// StopReason is the terminal state of a profile integration. Stopping
// is a normal outcome, never an error.
type StopReason int

const (
	// StopDomainEnd: the accumulated distance reached the requested
	// length (normal completion).
	StopDomainEnd StopReason = iota
	// StopSingularity: the depth approached critical depth, where the
	// GVF equation's denominator vanishes and the theory breaks down
	// (e.g. a hydraulic jump, which this engine does not model).
	StopSingularity
	// StopDryBed: the next step would have driven the depth to the bed.
	StopDryBed
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopDomainEnd:
		return "DOMAIN_END"
	case StopSingularity:
		return "SINGULARITY"
	case StopDryBed:
		return "DRY_BED"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Boundary is the starting condition of one profile integration.
type Boundary struct {
	// StartDepth is the known depth at the hydraulic control, m (> 0).
	StartDepth float64
	// StartX is the position of the control, m.
	StartX float64
	// Length is the distance to simulate, m (> 0).
	Length float64
}

// Validate checks the boundary constraints.
func (b Boundary) Validate() error {
	switch {
	case math.IsNaN(b.StartDepth) || b.StartDepth <= 0:
		return fmt.Errorf("%w: starting depth %g must be > 0", ErrInvalidBoundary, b.StartDepth)
	case math.IsNaN(b.StartX) || math.IsInf(b.StartX, 0):
		return fmt.Errorf("%w: starting position %g must be finite", ErrInvalidBoundary, b.StartX)
	case math.IsNaN(b.Length) || b.Length <= 0:
		return fmt.Errorf("%w: simulation length %g must be > 0", ErrInvalidBoundary, b.Length)
	}

	return nil
}

// ReferenceDepths carries the two depths every classification and
// integration is anchored to. They depend on Params only, never on the
// boundary condition.
type ReferenceDepths struct {
	// Normal is the uniform-flow depth yn.
	Normal float64
	// Critical is the depth yc at which Fr = 1.
	Critical float64
}

// Regime is the classification output.
type Regime struct {
	Class     SlopeClass
	Label     Label
	Direction Direction
}

// Sample is one committed (position, depth) point of a profile.
type Sample struct {
	X float64
	Y float64
}

// Result bundles everything one solve produces. It is immutable once
// returned.
type Result struct {
	Params   channel.Params
	Boundary Boundary
	Depths   ReferenceDepths
	Regime   Regime
	Samples  []Sample
	Stop     StopReason
}

// Option configures a solve via functional arguments.
type Option func(*Options)

// Options holds the engine tuning knobs.
type Options struct {
	// Step is the fixed integration step magnitude, m. The sign is
	// applied per Direction. Smaller steps trade runtime for accuracy
	// and for how closely the integrator may approach the singularity
	// band before stopping.
	Step float64

	// SingularityBand is the half-width of the |1 − Fr²| guard band
	// around critical depth.
	SingularityBand float64

	// ClassTolerance is the relative tolerance under which yn and yc
	// are considered equal (Critical slope).
	ClassTolerance float64

	// Tolerance is the root-finding convergence tolerance.
	Tolerance float64

	// MaxIterations bounds each Newton–Raphson solve.
	MaxIterations int
}

// DefaultOptions returns the engine defaults: 5 m step, 0.01
// singularity band, 1e-3 class tolerance, 1e-6 root tolerance,
// 100 iterations.
func DefaultOptions() Options {
	return Options{
		Step:            5.0,
		SingularityBand: 0.01,
		ClassTolerance:  1e-3,
		Tolerance:       1e-6,
		MaxIterations:   100,
	}
}

// WithStep sets the integration step magnitude.
func WithStep(dx float64) Option {
	return func(o *Options) { o.Step = dx }
}

// WithSingularityBand sets the |1 − Fr²| guard band half-width.
func WithSingularityBand(band float64) Option {
	return func(o *Options) { o.SingularityBand = band }
}

// WithClassTolerance sets the yn ≈ yc relative tolerance.
func WithClassTolerance(tol float64) Option {
	return func(o *Options) { o.ClassTolerance = tol }
}

// WithTolerance sets the root-finding tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the root-finding iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// validate rejects option values the engine cannot run with.
func (o Options) validate() error {
	switch {
	case o.Step <= 0 || math.IsNaN(o.Step):
		return fmt.Errorf("%w: Step=%g must be > 0", ErrOptionViolation, o.Step)
	case o.SingularityBand <= 0 || o.SingularityBand >= 1:
		return fmt.Errorf("%w: SingularityBand=%g must be in (0,1)", ErrOptionViolation, o.SingularityBand)
	case o.ClassTolerance <= 0 || math.IsNaN(o.ClassTolerance):
		return fmt.Errorf("%w: ClassTolerance=%g must be > 0", ErrOptionViolation, o.ClassTolerance)
	case o.Tolerance <= 0 || math.IsNaN(o.Tolerance):
		return fmt.Errorf("%w: Tolerance=%g must be > 0", ErrOptionViolation, o.Tolerance)
	case o.MaxIterations <= 0:
		return fmt.Errorf("%w: MaxIterations=%d must be > 0", ErrOptionViolation, o.MaxIterations)
	}

	return nil
}
