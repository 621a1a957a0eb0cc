package newton

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Solve finds a root of f near guess by Newton–Raphson iteration.
//
// Algorithm Outline:
//  1. Resolve the derivative: analytic if supplied, otherwise a
//     centered finite difference of step DiffStep.
//  2. Repeat up to MaxIterations times:
//     a. If |f(y)| < Tolerance, y is the root.
//     b. Compute y' = y − f(y)/f'(y). A vanishing or non-finite f'(y)
//     aborts with ErrConvergence.
//     c. If y' ≤ 0: re-clamp to Floor, or abort when clamping is
//     disabled — f is never evaluated at a non-physical point.
//     d. If |y' − y| < Tolerance, y' is the root (skipped for
//     re-clamped iterates, which say nothing about a root).
//  3. Budget exhausted → ErrConvergence.
//
// Complexity: O(MaxIterations) evaluations of f (×3 when the
// derivative is numeric).
func Solve(f Func, guess float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil target function", ErrBadOption)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	df := o.Derivative
	if df == nil {
		settings := &fd.Settings{Formula: fd.Central, Step: o.DiffStep}
		df = func(y float64) float64 { return fd.Derivative(f, y, settings) }
	}

	y := guess
	for i := 0; i < o.MaxIterations; i++ {
		fy := f(y)
		if math.Abs(fy) < o.Tolerance {
			return y, nil
		}

		dfy := df(y)
		if dfy == 0 || math.IsNaN(dfy) || math.IsInf(dfy, 0) {
			return 0, fmt.Errorf("%w: derivative %g at y=%g", ErrConvergence, dfy, y)
		}

		next := y - fy/dfy
		clamped := false
		if next <= 0 || math.IsNaN(next) {
			if o.Floor <= 0 {
				return 0, fmt.Errorf("%w: step drove iterate to %g from y=%g", ErrConvergence, next, y)
			}
			next = o.Floor
			clamped = true
		}
		// The step-size criterion only applies to genuine Newton steps;
		// a re-clamped iterate may sit arbitrarily close to the previous
		// one without being anywhere near a root.
		if !clamped && math.Abs(next-y) < o.Tolerance {
			return next, nil
		}
		y = next
	}

	return 0, fmt.Errorf("%w: %d iterations exhausted (last y=%g)", ErrConvergence, o.MaxIterations, y)
}

// validate rejects option combinations the loop cannot run with.
func (o Options) validate() error {
	switch {
	case o.Tolerance <= 0 || math.IsNaN(o.Tolerance):
		return fmt.Errorf("%w: Tolerance=%g must be > 0", ErrBadOption, o.Tolerance)
	case o.MaxIterations <= 0:
		return fmt.Errorf("%w: MaxIterations=%d must be > 0", ErrBadOption, o.MaxIterations)
	case o.Derivative == nil && (o.DiffStep <= 0 || math.IsNaN(o.DiffStep)):
		return fmt.Errorf("%w: DiffStep=%g must be > 0", ErrBadOption, o.DiffStep)
	}

	return nil
}
