package raycast

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_MatchesSequentialNearest(t *testing.T) {
	rects := demoRects()
	origin := NewVec2(250, 250)
	dirs := FanDirections(NewVec2(0, -1), 2*math.Pi, 360)

	for _, workers := range []int{-1, 0, 1, 3, 8, 1000} {
		results, err := Sweep(context.Background(), rects, origin, dirs, workers)
		require.NoError(t, err)
		require.Len(t, results, len(dirs))

		hits := 0
		for i, res := range results {
			wantHit, wantOK := Nearest(rects, NewRay(origin, dirs[i]))
			assert.Equal(t, dirs[i], res.Direction)
			assert.Equal(t, wantOK, res.OK)
			assert.Equal(t, wantHit, res.Hit)
			if res.OK {
				hits++
			}
		}
		assert.Greater(t, hits, 0, "workers=%d", workers)
		assert.Less(t, hits, len(dirs), "workers=%d", workers)
	}
}

func TestSweep_Empty(t *testing.T) {
	results, err := Sweep(context.Background(), demoRects(), Vec2{}, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSweep_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dirs := FanDirections(NewVec2(1, 0), math.Pi, 64)
	results, err := Sweep(ctx, demoRects(), NewVec2(250, 250), dirs, 4)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestFanDirections(t *testing.T) {
	t.Run("non-positive count", func(t *testing.T) {
		assert.Nil(t, FanDirections(NewVec2(1, 0), math.Pi, 0))
		assert.Nil(t, FanDirections(NewVec2(1, 0), math.Pi, -3))
	})

	t.Run("single ray is forward", func(t *testing.T) {
		dirs := FanDirections(NewVec2(3, 4), math.Pi, 1)
		require.Len(t, dirs, 1)
		assertVecInDelta(t, NewVec2(0.6, 0.8), dirs[0])
	})

	t.Run("zero forward points up", func(t *testing.T) {
		dirs := FanDirections(Vec2{}, 0, 1)
		require.Len(t, dirs, 1)
		assert.Equal(t, NewVec2(0, -1), dirs[0])
	})

	t.Run("cone endpoints and centre", func(t *testing.T) {
		dirs := FanDirections(NewVec2(1, 0), math.Pi/2, 3)
		require.Len(t, dirs, 3)
		assertVecInDelta(t, NewVec2(math.Sqrt2/2, -math.Sqrt2/2), dirs[0])
		assertVecInDelta(t, NewVec2(1, 0), dirs[1])
		assertVecInDelta(t, NewVec2(math.Sqrt2/2, math.Sqrt2/2), dirs[2])
	})

	t.Run("full circle has no duplicate", func(t *testing.T) {
		dirs := FanDirections(NewVec2(1, 0), 2*math.Pi, 4)
		require.Len(t, dirs, 4)
		assertVecInDelta(t, NewVec2(-1, 0), dirs[0])
		assertVecInDelta(t, NewVec2(0, -1), dirs[1])
		assertVecInDelta(t, NewVec2(1, 0), dirs[2])
		assertVecInDelta(t, NewVec2(0, 1), dirs[3])
	})

	t.Run("all unit length", func(t *testing.T) {
		for _, d := range FanDirections(NewVec2(-2, 7), 1.3, 17) {
			assert.InDelta(t, 1.0, d.Length(), 1e-12)
		}
	})
}
