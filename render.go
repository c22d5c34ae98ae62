package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycastdemo/pkg/raycast"
)

// Draw renders the obstacles, the aim line, the nearest hit and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.showFan {
		g.drawFan(screen)
	}

	for _, r := range g.state.Rects() {
		vector.StrokeRect(screen, float32(r.Pos.X), float32(r.Pos.Y), float32(r.Size.X), float32(r.Size.Y), 1, rectColor, false)
	}

	f := g.frame
	if f.Blocked {
		strokeSegment(screen, f.Origin, f.Blocker.Point, aimStrokeWidth, aimColor)
		strokeSegment(screen, f.Blocker.Point, f.Cursor, aimStrokeWidth, occludedColor)
	} else {
		strokeSegment(screen, f.Origin, f.Cursor, aimStrokeWidth, aimColor)
	}
	stampDisc(screen, f.Origin, originFootprint, originColor)

	if f.HasHit {
		vector.DrawFilledCircle(screen, float32(f.Hit.Point.X), float32(f.Hit.Point.Y), markerRadius, hitColor, true)
	}

	_, h := g.Layout(0, 0)
	ebitenutil.DebugPrintAt(screen, "Press P to set a new ray origin", helpTextX, clampCoord(h-helpTextBottom, 0, h))

	if *debugFlag {
		ebitenutil.DebugPrint(screen, g.debugMessage())
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.state.Bounds()
	return int(w), int(h)
}

// drawFan renders one thin line per visibility ray.
func (g *Game) drawFan(screen *ebiten.Image) {
	origin := g.state.Origin()
	for _, res := range g.fan {
		strokeSegment(screen, origin, g.fanEndpoint(res), fanStrokeWidth, fanColor)
	}
}

func (g *Game) debugMessage() string {
	f := g.frame
	hit := "none"
	if f.HasHit {
		hit = fmt.Sprintf("rect %d %s edge at (%.1f, %.1f) dist %.2f",
			f.Hit.Index, f.Hit.Edge, f.Hit.Point.X, f.Hit.Point.Y, f.Hit.Distance)
	}
	msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nOrigin: (%.0f, %.0f)\nHit: %s\nLine of sight: %t",
		ebiten.ActualFPS(), ebiten.ActualTPS(), f.Origin.X, f.Origin.Y, hit, !f.Blocked)
	if g.showFan {
		msg += fmt.Sprintf("\nFan: %d rays (+/-), sweep %.3f ms", g.fanRays, g.lastSweep.Seconds()*1000)
	}
	return msg
}

func strokeSegment(screen *ebiten.Image, from, to raycast.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), width, clr, true)
}
