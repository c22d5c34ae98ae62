// Package scene holds the mutable demo state that the raycast core stays
// free of: the rectangle layout, the ray origin and the window bounds.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"raycastdemo/pkg/raycast"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid scene config")

const (
	defaultWidth  = 640
	defaultHeight = 480
	defaultScale  = 2
)

// Point is a position in window pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectSpec is one obstacle as written in a scene file.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Config describes a scene: the logical window size, the starting ray
// origin and the obstacles.
type Config struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Scale  int        `yaml:"scale"`
	Origin Point      `yaml:"origin"`
	Rects  []RectSpec `yaml:"rects"`
}

// Default returns the three-box layout the demo starts with.
func Default() *Config {
	return &Config{
		Width:  defaultWidth,
		Height: defaultHeight,
		Scale:  defaultScale,
		Origin: Point{X: 250, Y: 250},
		Rects: []RectSpec{
			{X: 300, Y: 100, W: 20, H: 20},
			{X: 290, Y: 140, W: 20, H: 20},
			{X: 270, Y: 170, W: 20, H: 20},
		},
	}
}

// Load decodes a YAML scene. Missing window dimensions fall back to the
// defaults; unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if c.Width == 0 {
		c.Width = defaultWidth
	}
	if c.Height == 0 {
		c.Height = defaultHeight
	}
	if c.Scale == 0 {
		c.Scale = defaultScale
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads and decodes the scene at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return c, nil
}

// Validate checks the window and obstacle dimensions.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	}
	if c.Origin.X < 0 || c.Origin.Y < 0 || c.Origin.X > float64(c.Width) || c.Origin.Y > float64(c.Height) {
		return fmt.Errorf("%w: origin (%g,%g) outside %dx%d window", ErrInvalidConfig, c.Origin.X, c.Origin.Y, c.Width, c.Height)
	}
	for i, r := range c.Rects {
		if r.W < 0 || r.H < 0 {
			return fmt.Errorf("%w: rect %d has negative size %gx%g", ErrInvalidConfig, i, r.W, r.H)
		}
	}
	return nil
}

// RaycastRects converts the obstacle specs into core rectangles.
func (c *Config) RaycastRects() []raycast.Rect {
	rects := make([]raycast.Rect, len(c.Rects))
	for i, r := range c.Rects {
		rects[i] = raycast.NewRect(r.X, r.Y, r.W, r.H)
	}
	return rects
}

// OriginVec returns the starting ray origin.
func (c *Config) OriginVec() raycast.Vec2 {
	return raycast.NewVec2(c.Origin.X, c.Origin.Y)
}
