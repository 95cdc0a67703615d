package main

import (
	"fmt"
	"time"

	"github.com/gogpu/uiraster"
)

const (
	benchFullRuns = 64
	benchRuns     = 256
)

// runBench times full, medium, small and empty redraws of the sample
// scene and prints the mean of each in microseconds.
func runBench(w, h uint32, mem []byte) error {
	cmds, err := sceneCommands("", 32)
	if err != nil {
		return err
	}
	bg := uiraster.WithClearColor(uiraster.Opaque(255, 100, 100))

	newCtx := func() (*uiraster.Context, error) {
		ctx, err := uiraster.New(w, h, mem, bg)
		if err != nil {
			return nil, err
		}
		if ctx.Errors() != 0 {
			return nil, fmt.Errorf("context errors: %v", ctx.Errors())
		}
		return ctx, nil
	}

	var total time.Duration
	for range benchFullRuns {
		ctx, err := newCtx()
		if err != nil {
			return err
		}
		start := time.Now()
		ctx.Draw(cmds)
		total += time.Since(start)
	}
	report("full draw", total, benchFullRuns, 0)

	// Moves the big rect: many tiles per frame.
	if err := timeMoving("medium draw", newCtx, cmds, 0); err != nil {
		return err
	}
	// Moves the gradient: a handful of tiles per frame.
	if err := timeMoving("small draw", newCtx, cmds, 4); err != nil {
		return err
	}
	return timeMoving("no draw", newCtx, cmds, -1)
}

// timeMoving draws cmds repeatedly, shifting cmds[move] one pixel right
// before each draw. A negative move draws the same list every time.
func timeMoving(name string, newCtx func() (*uiraster.Context, error), cmds []uiraster.Command, move int) error {
	ctx, err := newCtx()
	if err != nil {
		return err
	}
	cmds = append([]uiraster.Command(nil), cmds...)
	ctx.Draw(cmds)

	var total time.Duration
	var redrawn uint32
	for range benchRuns {
		if move >= 0 {
			cmds[move].Rect = cmds[move].Rect.Translate(1, 0)
		}
		start := time.Now()
		redrawn += ctx.Draw(cmds)
		total += time.Since(start)
	}
	report(name, total, benchRuns, redrawn)
	return nil
}

func report(name string, total time.Duration, runs int, redrawn uint32) {
	us := float64(total) / float64(time.Microsecond) / float64(runs)
	if redrawn > 0 {
		fmt.Printf("%s: %.2fus (%.1f tiles/frame)\n", name, us, float64(redrawn)/float64(runs))
		return
	}
	fmt.Printf("%s: %.2fus\n", name, us)
}
