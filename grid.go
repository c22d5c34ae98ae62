package main

import "raycastdemo/pkg/raycast"

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// pixelOf rounds a scene position to the nearest pixel.
func pixelOf(p raycast.Vec2) (int, int) {
	return int(p.X + 0.5), int(p.Y + 0.5)
}
