package main

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"raycastdemo/pkg/raycast"
	"raycastdemo/pkg/scene"
)

// Game is the imperative shell around the raycast core: it owns the scene
// state, polls input once per tick and keeps the last query for Draw.
type Game struct {
	state  *scene.State
	frame  scene.Frame
	cursor raycast.Vec2
	scale  int

	log *zap.Logger

	watcher    *scene.Watcher
	watchTicks int

	layoutRand  *rand.Rand
	layoutCount int

	showFan   bool
	fanRays   int
	fan       []raycast.Result
	workers   int
	lastSweep time.Duration
}

// newGame constructs a fully initialized Game instance.
func newGame(cfg *scene.Config, logger *zap.Logger, watcher *scene.Watcher, layoutRand *rand.Rand) *Game {
	g := &Game{
		state:       scene.NewState(cfg),
		scale:       cfg.Scale,
		log:         logger,
		watcher:     watcher,
		layoutRand:  layoutRand,
		layoutCount: scatterCount,
		showFan:     *showFanFlag,
		fanRays:     clampCoord(*fanRaysFlag, minFanRays, maxFanRays),
		workers:     runtime.NumCPU(),
	}
	if *randomRectsFlag > 0 {
		g.layoutCount = *randomRectsFlag
	}
	g.cursor = g.state.Origin()
	g.frame = g.state.Aim(g.cursor)
	return g
}

// Update polls input, reloads the scene when needed and recomputes the
// nearest hit for the current cursor position.
func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	g.cursor = raycast.NewVec2(float64(cx), float64(cy))

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.state.SetOrigin(g.cursor)
		g.log.Debug("ray origin set", vecField("origin", g.state.Origin()))
	}
	if dx, dy := manualMovementVector(); dx != 0 || dy != 0 {
		g.state.Move(dx, dy)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rescatter()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showFan = !g.showFan
		g.fan = nil
	}
	g.handleDebugControls()
	g.pollScene()

	g.frame = g.state.Aim(g.cursor)

	if g.showFan {
		if err := g.refreshFan(); err != nil {
			return err
		}
	}
	return nil
}

// pollScene reloads the watched scene file every watchInterval ticks. A bad
// edit is logged and the current layout stays in place.
func (g *Game) pollScene() {
	if g.watcher == nil {
		return
	}
	g.watchTicks++
	if g.watchTicks < watchInterval {
		return
	}
	g.watchTicks = 0
	cfg, changed, err := g.watcher.Poll()
	if err != nil {
		g.log.Warn("scene reload failed", zap.String("path", g.watcher.Path()), zap.Error(err))
		return
	}
	if !changed {
		return
	}
	g.applyScene(cfg)
	g.log.Info("scene reloaded", zap.String("path", g.watcher.Path()), zap.Int("rects", len(cfg.Rects)))
}

// applyScene swaps in a new layout and resizes the window if needed.
func (g *Game) applyScene(cfg *scene.Config) {
	w, h := g.state.Bounds()
	g.state.Replace(cfg)
	if int(w) != cfg.Width || int(h) != cfg.Height || g.scale != cfg.Scale {
		g.scale = cfg.Scale
		ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	}
}

// rescatter replaces the obstacles with a fresh random layout around the
// current origin.
func (g *Game) rescatter() {
	w, h := g.state.Bounds()
	base := &scene.Config{Width: int(w), Height: int(h), Scale: g.scale}
	cfg := scatterLayout(g.layoutRand, base, g.state.Origin(), g.layoutCount)
	g.state.Replace(cfg)
	g.log.Info("scattered rectangles", zap.Int("requested", g.layoutCount), zap.Int("placed", len(cfg.Rects)))
}
