package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"raycastdemo/pkg/raycast"
)

// refreshFan recasts the visibility fan around the current aim direction.
func (g *Game) refreshFan() error {
	fovDeg := *fovDegreesFlag
	if fovDeg < 1 {
		fovDeg = 1
	} else if fovDeg > 360 {
		fovDeg = 360
	}
	dirs := raycast.FanDirections(g.frame.Direction, fovDeg*math.Pi/180.0, g.fanRays)
	start := time.Now()
	results, err := raycast.Sweep(context.Background(), g.state.Rects(), g.state.Origin(), dirs, g.workers)
	if err != nil {
		return fmt.Errorf("sweeping visibility fan: %w", err)
	}
	g.fan = results
	g.lastSweep = time.Since(start)
	return nil
}

// fanEndpoint returns where a fan ray should be drawn to: its hit, or a
// point far enough away to leave the window.
func (g *Game) fanEndpoint(res raycast.Result) raycast.Vec2 {
	if res.OK {
		return res.Hit.Point
	}
	w, h := g.state.Bounds()
	reach := math.Hypot(w, h)
	return g.state.Origin().Add(res.Direction.Normalize().Multiply(reach))
}
