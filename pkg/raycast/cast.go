// Package raycast casts 2D rays against the edges of axis-aligned rectangles.
package raycast

import "math"

// Hit describes the nearest accepted intersection of a query with a set of
// rectangles.
type Hit struct {
	Index    int     // Position of the rectangle in the input slice
	Edge     Edge    // Which boundary segment was hit
	Point    Vec2    // Intersection point
	Distance float64 // Euclidean distance from the query origin, never negative
}

// Nearest casts r against every edge of every rectangle and returns the
// closest hit. Ties on distance keep the first one found in rectangle then
// edge order. The boolean is false when nothing was hit, which includes an
// empty rects slice and a zero ray direction.
func Nearest(rects []Rect, r Ray) (Hit, bool) {
	return nearest(rects, r.Origin, func(edge Segment) (Vec2, bool) {
		return RayToSegment(r, edge)
	})
}

// Obstruction returns the edge crossing closest to the query origin along
// the bounded query segment, for example the first wall between two points.
func Obstruction(rects []Rect, query Segment) (Hit, bool) {
	return nearest(rects, query.Origin, func(edge Segment) (Vec2, bool) {
		return SegmentToSegment(query, edge)
	})
}

func nearest(rects []Rect, origin Vec2, intersect func(Segment) (Vec2, bool)) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	for i, rect := range rects {
		for e, edge := range rect.Edges() {
			point, ok := intersect(edge)
			if !ok {
				continue
			}
			d := origin.Distance(point)
			if d < best.Distance {
				best = Hit{Index: i, Edge: Edge(e), Point: point, Distance: d}
				found = true
			}
		}
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}
