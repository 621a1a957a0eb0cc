package profile

import (
	"github.com/katalvlaran/gvf/channel"
)

// Solve runs the whole pipeline for one channel and boundary
// condition: reference depths → regime classification → RK4 profile
// integration → result assembly.
//
// Root-finding and validation failures are true errors carrying the
// offending parameters; integration stopping (singularity, dry bed,
// domain end) is a normal terminal state reported in Result.Stop.
// Solve never substitutes a default depth and never integrates past a
// detected singularity.
//
// The call is a pure function of its arguments: identical inputs yield
// identical Results, and concurrent calls share no state.
func Solve(p channel.Params, bc Boundary, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := bc.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	refs, err := References(p, opts...)
	if err != nil {
		return nil, err
	}

	regime, err := Classify(refs.Normal, refs.Critical, bc.StartDepth, o.ClassTolerance)
	if err != nil {
		return nil, err
	}

	samples, stop, err := Integrate(p, bc, regime.Direction, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{
		Params:   p,
		Boundary: bc,
		Depths:   refs,
		Regime:   regime,
		Samples:  samples,
		Stop:     stop,
	}, nil
}
