package raycast

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one ray in a sweep.
type Result struct {
	Direction Vec2
	Hit       Hit
	OK        bool
}

// Sweep casts one ray per direction from origin and returns the results in
// the same order as directions. Work is split into contiguous chunks, one
// per worker. rects is only read, so callers must not mutate it until Sweep
// returns.
func Sweep(ctx context.Context, rects []Rect, origin Vec2, directions []Vec2, workers int) ([]Result, error) {
	results := make([]Result, len(directions))
	if len(directions) == 0 {
		return results, ctx.Err()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(directions) {
		workers = len(directions)
	}
	chunk := (len(directions) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(directions); start += chunk {
		end := min(start+chunk, len(directions))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				dir := directions[i]
				hit, ok := Nearest(rects, NewRay(origin, dir))
				results[i] = Result{Direction: dir, Hit: hit, OK: ok}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FanDirections spreads count unit directions evenly across a cone of fov
// radians centred on forward. A zero forward vector points up the screen.
func FanDirections(forward Vec2, fov float64, count int) []Vec2 {
	if count < 1 {
		return nil
	}
	forward = forward.Normalize()
	if forward.IsZero() {
		forward = Vec2{0, -1}
	}
	if count == 1 {
		return []Vec2{forward}
	}
	fov = math.Max(0, math.Min(fov, 2*math.Pi))
	step := fov / float64(count-1)
	if fov == 2*math.Pi {
		// A full circle would duplicate the first ray at the end.
		step = fov / float64(count)
	}
	dirs := make([]Vec2, count)
	for i := range dirs {
		dirs[i] = forward.Rotate(-fov/2 + step*float64(i))
	}
	return dirs
}
