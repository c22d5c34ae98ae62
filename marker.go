package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"raycastdemo/pkg/raycast"
)

// originFootprint is the pixel disc stamped at the ray origin.
var originFootprint = discOffsets(originRadius)

// discOffsets lists the pixel offsets within radius of the centre.
func discOffsets(radius int) []image.Point {
	offsets := make([]image.Point, 0, (2*radius+1)*(2*radius+1))
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				offsets = append(offsets, image.Pt(x, y))
			}
		}
	}
	return offsets
}

// stampDisc sets every footprint pixel around p that falls on screen.
func stampDisc(screen *ebiten.Image, p raycast.Vec2, footprint []image.Point, clr color.Color) {
	bounds := screen.Bounds()
	cx, cy := pixelOf(p)
	for _, off := range footprint {
		px := image.Pt(cx+off.X, cy+off.Y)
		if px.In(bounds) {
			screen.Set(px.X, px.Y, clr)
		}
	}
}
