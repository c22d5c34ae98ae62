package scene

import (
	"math"
	"math/rand"
)

// maxScatterAttempts bounds placement retries per requested rectangle.
const maxScatterAttempts = 32

// ScatterOptions controls procedural obstacle placement.
type ScatterOptions struct {
	Count     int
	MinSize   float64
	MaxSize   float64
	Width     int
	Height    int
	Margin    float64 // Distance kept from the window border
	Keep      Point   // Point that obstacles must stay away from, usually the ray origin
	Exclusion float64 // Minimum distance between Keep and any obstacle
}

// Scatter places up to opts.Count axis-aligned boxes inside the window. A
// candidate that would come within opts.Exclusion of opts.Keep is redrawn; if
// no fit is found after a bounded number of attempts the box is skipped, so
// fewer than Count boxes may be returned.
func Scatter(rng *rand.Rand, opts ScatterOptions) []RectSpec {
	if opts.Count <= 0 {
		return nil
	}
	minSize := math.Max(1, opts.MinSize)
	maxSize := math.Max(minSize, opts.MaxSize)
	spanX := float64(opts.Width) - 2*opts.Margin
	spanY := float64(opts.Height) - 2*opts.Margin
	if spanX < minSize || spanY < minSize {
		return nil
	}

	rects := make([]RectSpec, 0, opts.Count)
	for n := 0; n < opts.Count; n++ {
		for attempt := 0; attempt < maxScatterAttempts; attempt++ {
			w := minSize + rng.Float64()*(maxSize-minSize)
			h := minSize + rng.Float64()*(maxSize-minSize)
			w = math.Min(w, spanX)
			h = math.Min(h, spanY)
			r := RectSpec{
				X: opts.Margin + rng.Float64()*(spanX-w),
				Y: opts.Margin + rng.Float64()*(spanY-h),
				W: math.Round(w),
				H: math.Round(h),
			}
			r.X, r.Y = math.Round(r.X), math.Round(r.Y)
			if distanceToRect(opts.Keep, r) < opts.Exclusion {
				continue
			}
			rects = append(rects, r)
			break
		}
	}
	return rects
}

// distanceToRect returns how far p is from the closest point of r; zero when
// p is inside.
func distanceToRect(p Point, r RectSpec) float64 {
	dx := math.Max(0, math.Max(r.X-p.X, p.X-(r.X+r.W)))
	dy := math.Max(0, math.Max(r.Y-p.Y, p.Y-(r.Y+r.H)))
	return math.Hypot(dx, dy)
}
