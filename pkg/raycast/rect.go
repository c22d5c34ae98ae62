package raycast

// Edge identifies one of the four boundary segments of a Rect.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeLeft
	EdgeBottom
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned box given by its top-left corner and size.
// Sizes are not validated; a zero or negative size produces degenerate edges.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{x, y}, Size: Vec2{w, h}}
}

// Min returns the top-left corner
func (r Rect) Min() Vec2 {
	return r.Pos
}

// Max returns the bottom-right corner
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Vec2) bool {
	hi := r.Max()
	return p.X >= r.Pos.X && p.X <= hi.X && p.Y >= r.Pos.Y && p.Y <= hi.Y
}

// Edges returns the four boundary segments in top, left, bottom, right order.
func (r Rect) Edges() [4]Segment {
	x, y := r.Pos.X, r.Pos.Y
	w, h := r.Size.X, r.Size.Y
	return [4]Segment{
		EdgeTop:    {Origin: r.Pos, Direction: Vec2{w, 0}},
		EdgeLeft:   {Origin: r.Pos, Direction: Vec2{0, h}},
		EdgeBottom: {Origin: Vec2{x, y + h}, Direction: Vec2{w, 0}},
		EdgeRight:  {Origin: Vec2{x + w, y}, Direction: Vec2{0, h}},
	}
}
