// Package profile is the gradually-varied-flow engine: it locates the
// reference depths of a trapezoidal channel, classifies the flow
// regime, selects the integration direction demanded by hydraulic
// control theory, and integrates the GVF equation
//
//	dy/dx = (S0 − Sf(y)) / (1 − Fr(y)²)
//
// with a classic fourth-order Runge–Kutta stepper to produce a
// depth-vs-distance profile.
//
// 🚀 How a solve works:
//
//  1. Critical depth yc — Newton–Raphson root of Fr(y)² − 1.
//  2. Normal depth yn — Newton–Raphson root of ManningDischarge(y) − Q
//     (undefined on flat/adverse slopes: ErrNoNormalDepth).
//  3. Classification — yn vs yc gives the slope class (Mild / Steep /
//     Critical within a relative tolerance band); the starting depth vs
//     yc gives the direction: subcritical flow is controlled from
//     downstream, so the profile is traced Upstream; supercritical flow
//     is controlled from upstream and is traced Downstream. The profile
//     label (M1…C3) comes from an explicit zone table.
//  4. Integration — RK4 with a signed step, stopping on singularity
//     proximity (|1 − Fr²| inside a band around critical depth, where
//     GVF theory itself breaks down), on a dry bed, or on domain
//     exhaustion. Stops are reported as data (StopReason), not errors.
//
// ⚙️ Usage:
//
//	p := channel.Params{Q: 20, B: 10, M: 1.5, N: 0.015, S0: 0.0005}
//	bc := profile.Boundary{StartDepth: 1.5, StartX: 0, Length: 1000}
//
//	res, err := profile.Solve(p, bc)
//	if err != nil {
//	  // ErrNoNormalDepth, ErrAmbiguousRegime, newton.ErrConvergence,
//	  // channel.ErrInvalidParams or ErrInvalidBoundary
//	}
//	fmt.Println(res.Regime.Label, res.Stop, len(res.Samples))
//
// Determinism: a solve is a pure function of (Params, Boundary,
// Options); identical inputs produce identical Results, and concurrent
// solves share nothing.
//
// Errors:
//   - ErrNoNormalDepth    — normal depth requested with S0 ≤ 0.
//   - ErrAmbiguousRegime  — classification attempted without a usable
//     normal depth.
//   - ErrInvalidBoundary  — non-positive starting depth or length.
//   - ErrOptionViolation  — invalid Option values.
//   - newton.ErrConvergence, channel.ErrInvalidParams — wrapped from
//     the collaborating packages.
package profile
