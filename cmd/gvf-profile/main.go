// Command gvf-profile computes a steady-state water-surface profile
// for gradually varied flow in a trapezoidal channel and prints the
// classification summary, optionally with the full sample table and a
// rendered PNG figure.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/gvf/channel"
	"github.com/katalvlaran/gvf/profile"
	"github.com/katalvlaran/gvf/render"
)

func main() {
	var (
		q      = flag.Float64("q", 20, "discharge Q (m³/s)")
		width  = flag.Float64("b", 10, "bottom width b (m)")
		side   = flag.Float64("m", 1.5, "side slope m (H:V)")
		rough  = flag.Float64("n", 0.015, "Manning roughness n")
		bed    = flag.Float64("s0", 0.0005, "bed slope S0")
		depth  = flag.Float64("y", 1.5, "starting depth (m)")
		start  = flag.Float64("x", 0, "starting position (m)")
		length = flag.Float64("length", 1000, "distance to simulate (m)")
		step   = flag.Float64("step", 5, "integration step magnitude (m)")
		plot   = flag.String("plot", "", "optional PNG output path")
		table  = flag.Bool("table", false, "print the full sample table")
		debug  = flag.Bool("debug", false, "verbose development logging")
	)
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	p := channel.Params{Q: *q, B: *width, M: *side, N: *rough, S0: *bed}
	bc := profile.Boundary{StartDepth: *depth, StartX: *start, Length: *length}

	res, err := profile.Solve(p, bc, profile.WithStep(*step))
	if err != nil {
		sugar.Errorw("solve failed",
			"error", err,
			"Q", p.Q, "b", p.B, "m", p.M, "n", p.N, "S0", p.S0,
			"y_start", bc.StartDepth,
		)
		os.Exit(1)
	}

	sugar.Debugw("solve finished",
		"samples", len(res.Samples),
		"stop", res.Stop.String(),
	)

	fmt.Printf("Normal depth (yn)   : %.4f m\n", res.Depths.Normal)
	fmt.Printf("Critical depth (yc) : %.4f m\n", res.Depths.Critical)
	fmt.Printf("Slope class         : %s\n", res.Regime.Class)
	fmt.Printf("Profile label       : %s\n", res.Regime.Label)
	fmt.Printf("Direction           : %s\n", res.Regime.Direction)
	fmt.Printf("Stop reason         : %s\n", res.Stop)
	last := res.Samples[len(res.Samples)-1]
	fmt.Printf("Profile             : %d samples, x ∈ [%.1f, %.1f] m\n",
		len(res.Samples), res.Samples[0].X, last.X)

	if *table {
		fmt.Printf("\n%12s %12s\n", "x (m)", "y (m)")
		for _, s := range res.Samples {
			fmt.Printf("%12.2f %12.4f\n", s.X, s.Y)
		}
	}

	if *plot != "" {
		if err := render.SavePNG(res, *plot); err != nil {
			sugar.Errorw("figure rendering failed", "path", *plot, "error", err)
			os.Exit(1)
		}
		sugar.Infow("profile figure written", "path", *plot)
	}
}

// newLogger mirrors the usual debug/production switch: human-readable
// development output under -debug, JSON otherwise.
func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}

	return logger
}
