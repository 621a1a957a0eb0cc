// Package render draws the classic gradually-varied-flow figure —
// water-surface depth versus distance along the channel — from a
// profile.Result, using the gogpu/gg 2D canvas (software renderer, no
// GPU required).
//
// The figure carries the water-surface polyline, the channel bed
// baseline, dashed normal-depth and dash-dotted critical-depth
// reference lines, and a shaded band between the two reference depths
// (the transition zone).
//
// ⚙️ Usage:
//
//	res, _ := profile.Solve(p, bc)
//	if err := render.SavePNG(res, "profile.png"); err != nil { ... }
//
// The core engine has no dependency on this package; rendering is a
// presentation collaborator layered on top of the result bundle.
package render
