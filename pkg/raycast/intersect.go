package raycast

import "math"

// Epsilon is the determinant magnitude below which two directions are
// treated as parallel. Both solvers share it.
const Epsilon = 1e-9

// solve finds the parameters t (along p + t*v) and s (along q + s*w) where
// the two lines meet. ok is false when the lines are parallel or either
// direction is zero.
func solve(p, v, q, w Vec2) (t, s float64, ok bool) {
	det := v.Cross(w)
	if math.Abs(det) < Epsilon {
		return 0, 0, false
	}
	d := q.Subtract(p)
	return d.Cross(w) / det, d.Cross(v) / det, true
}

// RayToSegment intersects an infinite ray with a segment.
//
// The hit must lie on the segment (s in [0, 1]) and in front of the ray
// origin: the vector from the origin to the hit may not point against the
// ray direction. A hit exactly at the origin counts. Parallel lines,
// including collinear overlap, and zero directions never hit.
func RayToSegment(r Ray, seg Segment) (Vec2, bool) {
	_, s, ok := solve(r.Origin, r.Direction, seg.Origin, seg.Direction)
	if !ok || s < 0 || s > 1 {
		return Vec2{}, false
	}
	hit := seg.At(s)
	if hit.Subtract(r.Origin).Dot(r.Direction) < 0 {
		return Vec2{}, false
	}
	return hit, true
}

// SegmentToSegment intersects a bounded query segment with another segment.
// Both parameters must fall inside [0, 1], so the hit is always between the
// query's endpoints and no separate direction check is needed.
func SegmentToSegment(query, seg Segment) (Vec2, bool) {
	t, s, ok := solve(query.Origin, query.Direction, seg.Origin, seg.Direction)
	if !ok || t < 0 || t > 1 || s < 0 || s > 1 {
		return Vec2{}, false
	}
	return query.At(t), true
}
