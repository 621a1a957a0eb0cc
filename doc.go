// Package gvf computes steady-state water-surface profiles for
// gradually varied flow (GVF) in prismatic trapezoidal open channels —
// from section geometry and reference depths to regime classification
// and fourth-order Runge–Kutta profile integration.
//
// 🚀 What is gvf?
//
//	A small, deterministic hydraulics library that brings together:
//		• Section geometry: area, wetted perimeter, top width, hydraulic radius
//		• Hydraulic ratings: Froude number, Manning discharge, friction slope
//		• Reference depths: critical depth (Fr = 1) and normal depth (uniform flow)
//		• Regime classification: mild / steep / critical slope, M1…C3 profile labels
//		• Profile integration: RK4 over dy/dx = (S0 − Sf) / (1 − Fr²) with
//		  singularity, dry-bed and domain-end stopping rules
//		• Rendering: the classic depth-vs-distance profile figure as a PNG
//
// ✨ Why choose gvf?
//
//   - Pure computation – every solve is a pure function of its inputs,
//     safe to run concurrently with no coordination
//   - Explicit failure modes – sentinel errors for invalid depths,
//     missing normal depth, non-convergence and ambiguous regimes;
//     integration stops are data, never errors
//   - Grounded numerics – Newton–Raphson root finding with analytic or
//     finite-difference derivatives (gonum), classic RK4 stepping
//
// Everything is organized under five subpackages:
//
//	channel/ — trapezoidal section geometry and hydraulic ratings
//	newton/  — parameterized one-dimensional Newton–Raphson solver
//	profile/ — reference depths, regime classification, RK4 integration, Solve
//	render/  — profile figure rendering on gogpu/gg
//	cmd/gvf-profile — command-line front end
//
// Quick ASCII example (an M1 backwater curve):
//
//	depth
//	 │········──────────── y(x)
//	 │────────────────────  yn
//	 │- - - - - - - - - -   yc
//	 └──────────────────── distance
//
// Dive into README.md and examples/ for full scenarios.
//
//	go get github.com/katalvlaran/gvf/profile
package gvf
