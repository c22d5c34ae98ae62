package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycastdemo/pkg/raycast"
)

const sampleScene = `
width: 320
height: 240
origin: {x: 10, y: 20}
rects:
  - {x: 100, y: 50, w: 30, h: 10}
  - {x: 200, y: 60, w: 5, h: 5}
`

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.Equal(t, raycast.NewVec2(250, 250), c.OriginVec())
	assert.Equal(t, []raycast.Rect{
		raycast.NewRect(300, 100, 20, 20),
		raycast.NewRect(290, 140, 20, 20),
		raycast.NewRect(270, 170, 20, 20),
	}, c.RaycastRects())
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)

	assert.Equal(t, 320, c.Width)
	assert.Equal(t, 240, c.Height)
	assert.Equal(t, defaultScale, c.Scale, "missing scale falls back to the default")
	assert.Equal(t, Point{X: 10, Y: 20}, c.Origin)
	assert.Equal(t, []RectSpec{{X: 100, Y: 50, W: 30, H: 10}, {X: 200, Y: 60, W: 5, H: 5}}, c.Rects)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{name: "empty", input: "", invalid: true},
		{name: "negative width", input: "width: -5\n", invalid: true},
		{name: "negative scale", input: "scale: -1\n", invalid: true},
		{name: "origin outside", input: "origin: {x: 9999, y: 0}\n", invalid: true},
		{name: "negative rect", input: "rects:\n  - {x: 0, y: 0, w: -1, h: 4}\n", invalid: true},
		{name: "unknown key", input: "colour: red\n"},
		{name: "malformed", input: "rects: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig), "error: %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Rects, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_ZeroSizedRectAllowed(t *testing.T) {
	c := Default()
	c.Rects = append(c.Rects, RectSpec{X: 5, Y: 5})
	assert.NoError(t, c.Validate())
}

func TestLoadFile_BundledCorridor(t *testing.T) {
	c, err := LoadFile(filepath.Join("..", "..", "scenes", "corridor.yaml"))
	require.NoError(t, err)
	require.Len(t, c.Rects, 9)

	// Straight down the corridor the end wall is the first thing hit.
	s := NewState(c)
	f := s.Aim(raycast.NewVec2(600, 240))
	require.True(t, f.HasHit)
	assert.Equal(t, 8, f.Hit.Index)
	assert.Equal(t, raycast.EdgeLeft, f.Hit.Edge)
	assert.InDelta(t, 520.0, f.Hit.Distance, 1e-9)
	assert.True(t, f.Blocked)
}
