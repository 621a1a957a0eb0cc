package newton

import "errors"

var (
	// ErrConvergence indicates the solver exhausted its iteration
	// budget or diverged (vanishing/non-finite derivative, or a
	// non-physical step with clamping disabled).
	ErrConvergence = errors.New("newton: did not converge")

	// ErrBadOption is returned when an invalid option or a nil target
	// function is supplied.
	ErrBadOption = errors.New("newton: invalid option supplied")
)

// Func is a scalar function of one real variable.
type Func func(float64) float64

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the Newton–Raphson tuning knobs.
type Options struct {
	// Tolerance terminates the iteration when |f(y)| or the step size
	// falls below it. Must be > 0.
	Tolerance float64

	// MaxIterations bounds the Newton loop. Must be > 0.
	MaxIterations int

	// Derivative is the analytic f'. When nil, a centered finite
	// difference with step DiffStep is used.
	Derivative Func

	// DiffStep is the finite-difference step for the numeric
	// derivative. Must be > 0.
	DiffStep float64

	// Floor is the value a non-positive iterate is re-clamped to.
	// A Floor ≤ 0 disables clamping: a step that drives the iterate
	// to zero or below then fails with ErrConvergence.
	Floor float64
}

// DefaultOptions returns the solver defaults:
// Tolerance 1e-6, MaxIterations 100, finite-difference derivative with
// step 1e-5, positivity floor 0.1.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-6,
		MaxIterations: 100,
		DiffStep:      1e-5,
		Floor:         0.1,
	}
}

// WithTolerance sets the convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithDerivative supplies the analytic derivative of the target.
func WithDerivative(df Func) Option {
	return func(o *Options) { o.Derivative = df }
}

// WithDiffStep sets the finite-difference step used when no analytic
// derivative is supplied.
func WithDiffStep(h float64) Option {
	return func(o *Options) { o.DiffStep = h }
}

// WithFloor sets the positivity floor; pass 0 to disable clamping.
func WithFloor(floor float64) Option {
	return func(o *Options) { o.Floor = floor }
}
