package main

import (
	"math/rand"

	"raycastdemo/pkg/raycast"
	"raycastdemo/pkg/scene"
)

// scatterLayout returns a copy of base with count randomly placed rectangles
// that keep clear of keep.
func scatterLayout(rng *rand.Rand, base *scene.Config, keep raycast.Vec2, count int) *scene.Config {
	cfg := *base
	cfg.Origin = scene.Point{X: keep.X, Y: keep.Y}
	cfg.Rects = scene.Scatter(rng, scene.ScatterOptions{
		Count:     count,
		MinSize:   scatterMinSize,
		MaxSize:   scatterMaxSize,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Margin:    scatterMargin,
		Keep:      cfg.Origin,
		Exclusion: scatterExclusion,
	})
	return &cfg
}
