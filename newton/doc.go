// Package newton provides a parameterized one-dimensional
// Newton–Raphson root finder.
//
// The solver iterates y_{k+1} = y_k − f(y_k)/f'(y_k) until either the
// residual |f(y_k)| or the step |y_{k+1}−y_k| falls below the
// tolerance. The derivative is supplied analytically via
// WithDerivative, or approximated by a centered finite difference
// (gonum diff/fd) when absent.
//
// The package targets physical quantities that must stay positive
// (flow depths): a Newton step that drives the iterate to zero or
// below is re-clamped to a configurable positive floor rather than
// ever evaluating f at a non-physical point. Disable the floor with
// WithFloor(0) to abort on such steps instead.
//
// ⚙️ Usage:
//
//	// root of y² − 2 starting from 1: √2
//	root, err := newton.Solve(func(y float64) float64 { return y*y - 2 }, 1)
//	if err != nil {
//	  // handle ErrConvergence or ErrBadOption
//	}
//
// Errors:
//   - ErrBadOption   — nil function or invalid option values.
//   - ErrConvergence — iteration budget exhausted, vanishing or
//     non-finite derivative, or repeated non-physical steps with the
//     floor disabled.
package newton
