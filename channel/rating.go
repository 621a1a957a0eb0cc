// Package channel - hydraulic ratings derived from the section geometry.
//
// These three quantities are shared by both root-finding targets and by
// the profile integrator, so they live here beside the geometry they
// are built from:
//  1. FroudeSquared  — Fr² = Q²·T / (g·A³); Fr = 1 marks critical flow.
//  2. ManningDischarge — Q(y) = (1/N)·A·R^(2/3)·√S0, the uniform-flow
//     rating; its root in y is the normal depth.
//  3. FrictionSlope  — Sf = N²·Q² / (A²·R^(4/3)), the energy gradient
//     consumed by boundary friction at depth y.
package channel

import (
	"fmt"
	"math"
)

// FroudeSquared returns the squared Froude number at depth y.
func (p Params) FroudeSquared(y float64) (float64, error) {
	a, err := p.Area(y)
	if err != nil {
		return 0, err
	}
	t, err := p.TopWidth(y)
	if err != nil {
		return 0, err
	}

	return p.Q * p.Q * t / (p.G() * a * a * a), nil
}

// ManningDischarge returns the uniform-flow discharge the section would
// carry at depth y under Manning's equation. The bed slope must be
// positive; a flat or adverse slope yields ErrNonPositiveSlope.
func (p Params) ManningDischarge(y float64) (float64, error) {
	if p.S0 <= 0 {
		return 0, fmt.Errorf("%w (S0=%g)", ErrNonPositiveSlope, p.S0)
	}
	a, err := p.Area(y)
	if err != nil {
		return 0, err
	}
	r, err := p.HydraulicRadius(y)
	if err != nil {
		return 0, err
	}

	return a * math.Pow(r, 2.0/3.0) * math.Sqrt(p.S0) / p.N, nil
}

// FrictionSlope returns the Manning friction slope Sf at depth y.
func (p Params) FrictionSlope(y float64) (float64, error) {
	a, err := p.Area(y)
	if err != nil {
		return 0, err
	}
	r, err := p.HydraulicRadius(y)
	if err != nil {
		return 0, err
	}

	return p.N * p.N * p.Q * p.Q / (a * a * math.Pow(r, 4.0/3.0)), nil
}
