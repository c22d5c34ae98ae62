package raycast

// Ray is a half-line p + t*v for t >= 0.
type Ray struct {
	Origin    Vec2
	Direction Vec2
}

// NewRay creates a new ray
func NewRay(origin, direction Vec2) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Segment is the finite piece q + s*w for s in [0, 1].
type Segment struct {
	Origin    Vec2
	Direction Vec2
}

// NewSegment creates a segment from an origin and a direction vector whose
// length is the segment length.
func NewSegment(origin, direction Vec2) Segment {
	return Segment{Origin: origin, Direction: direction}
}

// SegmentBetween creates the segment running from a to b.
func SegmentBetween(a, b Vec2) Segment {
	return Segment{Origin: a, Direction: b.Subtract(a)}
}

// At returns the point at parameter s along the segment
func (s Segment) At(param float64) Vec2 {
	return s.Origin.Add(s.Direction.Multiply(param))
}

// End returns the far endpoint of the segment
func (s Segment) End() Vec2 {
	return s.Origin.Add(s.Direction)
}

// Ray returns the infinite ray that starts at the segment origin.
func (s Segment) Ray() Ray {
	return Ray{Origin: s.Origin, Direction: s.Direction}
}
