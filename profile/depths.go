package profile

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gvf/channel"
	"github.com/katalvlaran/gvf/newton"
)

// Seed depths for the Newton solves. These are heuristic starting
// points, not part of the contract; the positivity floor in newton
// keeps the iterates physical whatever the channel scale.
const (
	criticalSeed = 2.0
	normalSeed   = 4.0
)

// CriticalDepth finds yc, the depth at which Fr(yc) = 1, as the root
// of Fr(y)² − 1.
func CriticalDepth(p channel.Params, opts ...Option) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	f := func(y float64) float64 {
		fr2, err := p.FroudeSquared(y)
		if err != nil {
			return math.NaN()
		}

		return fr2 - 1
	}

	yc, err := newton.Solve(f, criticalSeed,
		newton.WithTolerance(o.Tolerance),
		newton.WithMaxIterations(o.MaxIterations),
	)
	if err != nil {
		return 0, fmt.Errorf("profile: critical depth for Q=%g B=%g M=%g: %w", p.Q, p.B, p.M, err)
	}

	return yc, nil
}

// NormalDepth finds yn, the uniform-flow depth, as the root of
// ManningDischarge(y) − Q. It fails with ErrNoNormalDepth when S0 ≤ 0:
// uniform flow cannot exist on a flat or adverse slope.
func NormalDepth(p channel.Params, opts ...Option) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.S0 <= 0 {
		return 0, fmt.Errorf("%w (S0=%g)", ErrNoNormalDepth, p.S0)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	f := func(y float64) float64 {
		q, err := p.ManningDischarge(y)
		if err != nil {
			return math.NaN()
		}

		return q - p.Q
	}

	yn, err := newton.Solve(f, normalSeed,
		newton.WithTolerance(o.Tolerance),
		newton.WithMaxIterations(o.MaxIterations),
	)
	if err != nil {
		return 0, fmt.Errorf("profile: normal depth for Q=%g N=%g S0=%g: %w", p.Q, p.N, p.S0, err)
	}

	return yn, nil
}

// References computes both reference depths for p. They are a function
// of the channel parameters alone.
func References(p channel.Params, opts ...Option) (ReferenceDepths, error) {
	yc, err := CriticalDepth(p, opts...)
	if err != nil {
		return ReferenceDepths{}, err
	}
	yn, err := NormalDepth(p, opts...)
	if err != nil {
		return ReferenceDepths{}, err
	}

	return ReferenceDepths{Normal: yn, Critical: yc}, nil
}
