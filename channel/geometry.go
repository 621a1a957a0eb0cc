package channel

import (
	"fmt"
	"math"
)

// Area returns the flow cross-section area at depth y:
// A = (B + M·y)·y.
func (p Params) Area(y float64) (float64, error) {
	if err := checkDepth(y); err != nil {
		return 0, err
	}

	return (p.B + p.M*y) * y, nil
}

// WettedPerimeter returns the wetted perimeter at depth y:
// P = B + 2·y·√(1+M²).
func (p Params) WettedPerimeter(y float64) (float64, error) {
	if err := checkDepth(y); err != nil {
		return 0, err
	}

	return p.B + 2*y*math.Sqrt(1+p.M*p.M), nil
}

// TopWidth returns the free-surface width at depth y:
// T = B + 2·M·y.
func (p Params) TopWidth(y float64) (float64, error) {
	if err := checkDepth(y); err != nil {
		return 0, err
	}

	return p.B + 2*p.M*y, nil
}

// HydraulicRadius returns R = Area / WettedPerimeter at depth y.
func (p Params) HydraulicRadius(y float64) (float64, error) {
	a, err := p.Area(y)
	if err != nil {
		return 0, err
	}
	wp, err := p.WettedPerimeter(y)
	if err != nil {
		return 0, err
	}

	return a / wp, nil
}

// checkDepth guards every depth-dependent evaluation.
func checkDepth(y float64) error {
	if math.IsNaN(y) || y <= 0 {
		return fmt.Errorf("%w (y=%g)", ErrInvalidDepth, y)
	}

	return nil
}
