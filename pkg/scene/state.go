package scene

import (
	"math"

	"raycastdemo/pkg/raycast"
)

// Frame is everything the renderer needs for one aim query.
type Frame struct {
	Origin    raycast.Vec2
	Cursor    raycast.Vec2
	Direction raycast.Vec2

	// Hit is the nearest edge along the infinite ray toward the cursor.
	Hit    raycast.Hit
	HasHit bool

	// Blocker is the first edge between the origin and the cursor.
	Blocker raycast.Hit
	Blocked bool
}

// State owns the per-frame mutable data of the demo. The raycast package
// only ever sees copies of it.
type State struct {
	width, height float64
	rects         []raycast.Rect
	origin        raycast.Vec2
}

// NewState builds the driver state from a validated config.
func NewState(cfg *Config) *State {
	s := &State{}
	s.Replace(cfg)
	s.SetOrigin(cfg.OriginVec())
	return s
}

// Origin returns the current ray origin.
func (s *State) Origin() raycast.Vec2 {
	return s.origin
}

// SetOrigin moves the ray origin, clamped to the window.
func (s *State) SetOrigin(p raycast.Vec2) {
	s.origin = s.clamp(p)
}

// Move shifts the ray origin by (dx, dy), clamped to the window.
func (s *State) Move(dx, dy float64) {
	s.SetOrigin(s.origin.Add(raycast.NewVec2(dx, dy)))
}

// Rects returns the current obstacles. Callers must treat the slice as
// read-only.
func (s *State) Rects() []raycast.Rect {
	return s.rects
}

// Bounds returns the window size the state clamps to.
func (s *State) Bounds() (float64, float64) {
	return s.width, s.height
}

// Replace swaps in a new layout and window size. The origin is kept, clamped
// into the new window.
func (s *State) Replace(cfg *Config) {
	s.width = float64(cfg.Width)
	s.height = float64(cfg.Height)
	s.rects = cfg.RaycastRects()
	s.origin = s.clamp(s.origin)
}

// Aim casts from the origin toward cursor and checks the straight line
// between them for obstacles.
func (s *State) Aim(cursor raycast.Vec2) Frame {
	f := Frame{
		Origin:    s.origin,
		Cursor:    cursor,
		Direction: cursor.Subtract(s.origin),
	}
	f.Hit, f.HasHit = raycast.Nearest(s.rects, raycast.NewRay(f.Origin, f.Direction))
	f.Blocker, f.Blocked = raycast.Obstruction(s.rects, raycast.SegmentBetween(f.Origin, cursor))
	return f
}

func (s *State) clamp(p raycast.Vec2) raycast.Vec2 {
	return raycast.NewVec2(
		math.Max(0, math.Min(s.width, p.X)),
		math.Max(0, math.Min(s.height, p.Y)),
	)
}
