package channel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDepth is returned when a geometry or rating evaluation
	// is requested at a non-positive depth.
	ErrInvalidDepth = errors.New("channel: depth must be positive")

	// ErrInvalidParams is returned by Validate when the channel
	// parameters violate their positivity constraints.
	ErrInvalidParams = errors.New("channel: invalid channel parameters")

	// ErrNonPositiveSlope is returned by ManningDischarge when the bed
	// slope is zero or adverse; uniform flow cannot exist there.
	ErrNonPositiveSlope = errors.New("channel: uniform flow requires a positive bed slope")
)

// DefaultGravity is the gravitational acceleration used when
// Params.Gravity is left zero, in m/s².
const DefaultGravity = 9.81

// Params describes a prismatic trapezoidal channel and its steady
// discharge. A Params value is immutable for the duration of a solve.
//
// Fields:
//   - Q  — discharge, m³/s (> 0)
//   - B  — bottom width, m (≥ 0)
//   - M  — side slope, horizontal:vertical (≥ 0)
//   - N  — Manning roughness coefficient (> 0)
//   - S0 — longitudinal bed slope (sign free; see ManningDischarge)
//   - Gravity — gravitational acceleration, m/s²; zero means DefaultGravity
//
// B and M must not both be zero: that section has no width at any depth.
type Params struct {
	Q       float64
	B       float64
	M       float64
	N       float64
	S0      float64
	Gravity float64
}

// G returns the effective gravitational acceleration.
func (p Params) G() float64 {
	if p.Gravity > 0 {
		return p.Gravity
	}

	return DefaultGravity
}

// Validate checks the positivity constraints on p.
// It returns nil or an error wrapping ErrInvalidParams that names the
// offending field.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.Q) || p.Q <= 0:
		return fmt.Errorf("%w: discharge Q=%g must be > 0", ErrInvalidParams, p.Q)
	case math.IsNaN(p.B) || p.B < 0:
		return fmt.Errorf("%w: bottom width B=%g must be ≥ 0", ErrInvalidParams, p.B)
	case math.IsNaN(p.M) || p.M < 0:
		return fmt.Errorf("%w: side slope M=%g must be ≥ 0", ErrInvalidParams, p.M)
	case p.B == 0 && p.M == 0:
		return fmt.Errorf("%w: B and M must not both be zero", ErrInvalidParams)
	case math.IsNaN(p.N) || p.N <= 0:
		return fmt.Errorf("%w: Manning roughness N=%g must be > 0", ErrInvalidParams, p.N)
	case math.IsNaN(p.S0):
		return fmt.Errorf("%w: bed slope S0 is NaN", ErrInvalidParams)
	case p.Gravity < 0:
		return fmt.Errorf("%w: gravity %g must be ≥ 0", ErrInvalidParams, p.Gravity)
	}

	return nil
}
