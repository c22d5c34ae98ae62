package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(-1, 2)

	assert.Equal(t, NewVec2(2, 6), a.Add(b))
	assert.Equal(t, NewVec2(4, 2), a.Subtract(b))
	assert.Equal(t, NewVec2(6, 8), a.Multiply(2))
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 10.0, a.Cross(b))
	assert.Equal(t, -10.0, b.Cross(a))
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, 25.0, a.LengthSquared())
	assert.Equal(t, 5.0, Vec2{}.Distance(a))
}

func TestVec2_Normalize(t *testing.T) {
	assert.Equal(t, NewVec2(0.6, 0.8), NewVec2(3, 4).Normalize())
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.True(t, Vec2{}.IsZero())
	assert.False(t, NewVec2(0, 1e-300).IsZero())
}

func TestVec2_Rotate(t *testing.T) {
	got := NewVec2(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, got.X, 1e-12)
	assert.InDelta(t, 1.0, got.Y, 1e-12)
}

func TestRayAndSegmentAt(t *testing.T) {
	r := NewRay(NewVec2(1, 1), NewVec2(2, 0))
	assert.Equal(t, NewVec2(7, 1), r.At(3))

	s := SegmentBetween(NewVec2(1, 1), NewVec2(5, 3))
	assert.Equal(t, NewVec2(4, 2), s.Direction)
	assert.Equal(t, NewVec2(3, 2), s.At(0.5))
	assert.Equal(t, NewVec2(5, 3), s.End())
	assert.Equal(t, NewRay(s.Origin, s.Direction), s.Ray())
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Contains(NewVec2(5, 5)))
	assert.True(t, r.Contains(NewVec2(10, 0)))
	assert.False(t, r.Contains(NewVec2(10.5, 5)))
	assert.Equal(t, NewVec2(10, 10), r.Max())
	assert.Equal(t, NewVec2(0, 0), r.Min())
}
