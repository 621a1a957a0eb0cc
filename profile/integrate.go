package profile

import (
	"math"

	"github.com/katalvlaran/gvf/channel"
)

// minDepth is the depth under which the section is treated as dry:
// Runge–Kutta stage evaluations below it contribute zero slope, and a
// projected step into it terminates the run with StopDryBed.
const minDepth = 0.05

// Integrate advances the depth from the boundary condition with a
// classic fourth-order Runge–Kutta stepper over
//
//	dy/dx = (S0 − Sf(y)) / (1 − Fr(y)²)
//
// using the fixed step magnitude from Options, signed per dir.
//
// Stopping rules, checked BEFORE a step is committed so the sequence
// never contains a sample past a detected singularity or under the
// dry-bed bound:
//   - |1 − Fr²| within the singularity band at the current depth, or
//     at the projected depth, or a sign change of 1 − Fr² across the
//     step (the step would cross critical depth) → StopSingularity.
//   - projected depth at or below the dry bound → StopDryBed.
//   - accumulated |distance| ≥ bc.Length → StopDomainEnd.
//
// The returned sequence always contains the starting sample, is
// strictly ordered by accumulated distance with |Δx| equal to the step
// magnitude, and is finite (bounded by Length/Step).
func Integrate(p channel.Params, bc Boundary, dir Direction, opts ...Option) ([]Sample, StopReason, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}
	if err := bc.Validate(); err != nil {
		return nil, 0, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, 0, err
	}

	dx := o.Step * dir.Sign()
	x, y := bc.StartX, bc.StartDepth
	samples := []Sample{{X: x, Y: y}}

	for traveled := 0.0; ; {
		if y <= minDepth {
			return samples, StopDryBed, nil
		}
		fr2, err := p.FroudeSquared(y)
		if err != nil {
			return samples, StopDryBed, nil
		}
		if math.Abs(1-fr2) < o.SingularityBand {
			return samples, StopSingularity, nil
		}
		if traveled >= bc.Length {
			return samples, StopDomainEnd, nil
		}

		k1 := slope(p, y, o.SingularityBand)
		k2 := slope(p, y+k1*dx/2, o.SingularityBand)
		k3 := slope(p, y+k2*dx/2, o.SingularityBand)
		k4 := slope(p, y+k3*dx, o.SingularityBand)
		next := y + dx/6*(k1+2*k2+2*k3+k4)

		if next <= minDepth {
			return samples, StopDryBed, nil
		}
		fr2Next, err := p.FroudeSquared(next)
		if err != nil {
			return samples, StopDryBed, nil
		}
		// Landing inside the band or crossing critical depth outright
		// both mean the GVF equation broke down mid-step.
		if math.Abs(1-fr2Next) < o.SingularityBand || (1-fr2)*(1-fr2Next) < 0 {
			return samples, StopSingularity, nil
		}

		x += dx
		y = next
		traveled += o.Step
		samples = append(samples, Sample{X: x, Y: y})
	}
}

// slope evaluates dy/dx for one RK4 stage. Stage depths that wander
// into the dry or near-critical region contribute zero slope, keeping
// every stage finite; the commit guards in Integrate decide
// termination.
func slope(p channel.Params, y, band float64) float64 {
	if y <= minDepth {
		return 0
	}
	sf, err := p.FrictionSlope(y)
	if err != nil {
		return 0
	}
	fr2, err := p.FroudeSquared(y)
	if err != nil {
		return 0
	}
	if math.Abs(1-fr2) < band {
		return 0
	}

	return (p.S0 - sf) / (1 - fr2)
}
