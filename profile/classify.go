package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// labelTable maps (SlopeClass, zone) to the profile label. Zone 0 is
// above both reference depths, zone 1 between them, zone 2 below both.
// Keeping the combinatorics in one table keeps the classification
// total and trivially exhaustive to test.
var labelTable = map[SlopeClass][3]Label{
	Mild:     {M1, M2, M3},
	Steep:    {S1, S2, S3},
	Critical: {C1, C2, C3},
}

// Classify derives the regime from the two reference depths and the
// starting depth.
//
//  1. SlopeClass: yn vs yc, with |yn−yc| within relative tolerance tol
//     mapped to Critical (the normal depth is unstable there).
//  2. Direction: Upstream iff yStart > yc. Subcritical flow is
//     controlled from downstream, supercritical from upstream; the
//     slope class plays no part.
//  3. Label: the zone of yStart against {yn, yc} via labelTable. On a
//     Critical slope the zone-2 band is yStart ≈ yc within tol (C2,
//     uniform critical flow).
//
// A non-finite yn (the caller has no normal depth) or non-positive
// yc/yStart yields ErrAmbiguousRegime.
func Classify(yn, yc, yStart, tol float64) (Regime, error) {
	switch {
	case math.IsNaN(yn) || math.IsInf(yn, 0) || yn <= 0:
		return Regime{}, fmt.Errorf("%w: normal depth %g is not usable", ErrAmbiguousRegime, yn)
	case math.IsNaN(yc) || math.IsInf(yc, 0) || yc <= 0:
		return Regime{}, fmt.Errorf("%w: critical depth %g is not usable", ErrAmbiguousRegime, yc)
	case math.IsNaN(yStart) || yStart <= 0:
		return Regime{}, fmt.Errorf("%w: starting depth %g is not usable", ErrAmbiguousRegime, yStart)
	case tol <= 0 || math.IsNaN(tol):
		return Regime{}, fmt.Errorf("%w: ClassTolerance=%g must be > 0", ErrOptionViolation, tol)
	}

	var class SlopeClass
	switch {
	case scalar.EqualWithinRel(yn, yc, tol):
		class = Critical
	case yn > yc:
		class = Mild
	default:
		class = Steep
	}

	dir := Downstream
	if yStart > yc {
		dir = Upstream
	}

	var zone int
	if class == Critical {
		switch {
		case scalar.EqualWithinRel(yStart, yc, tol):
			zone = 1
		case yStart > yc:
			zone = 0
		default:
			zone = 2
		}
	} else {
		upper, lower := math.Max(yn, yc), math.Min(yn, yc)
		switch {
		case yStart > upper:
			zone = 0
		case yStart > lower:
			zone = 1
		default:
			zone = 2
		}
	}

	return Regime{Class: class, Label: labelTable[class][zone], Direction: dir}, nil
}
