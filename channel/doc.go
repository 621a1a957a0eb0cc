// Package channel models a prismatic trapezoidal open-channel section:
// pure, stateless functions mapping a flow depth to section geometry
// (area, wetted perimeter, top width, hydraulic radius) and to the
// hydraulic ratings built on them (Froude number, Manning discharge,
// friction slope).
//
// All functions are methods on an immutable Params value, so one set of
// channel parameters can serve any number of concurrent evaluations.
//
// ⚙️ Usage:
//
//	p := channel.Params{Q: 20, B: 10, M: 1.5, N: 0.015, S0: 0.0005}
//	if err := p.Validate(); err != nil { ... }
//
//	a, err := p.Area(1.2)            // flow area at depth 1.2 m
//	fr2, err := p.FroudeSquared(1.2) // Fr² at the same depth
//
// Contract: every depth-dependent method rejects y ≤ 0 with
// ErrInvalidDepth — a degenerate or negative depth is never physically
// meaningful and is never silently computed.
package channel
