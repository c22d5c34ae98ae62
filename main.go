package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"raycastdemo/pkg/scene"
)

func main() {
	flag.Parse()
	env, err := loadEnvSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading RAYCAST_* environment: %v\n", err)
		os.Exit(2)
	}
	applyEnvDefaults(env)

	logger, err := newLogger(*logLevelFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(logger); err != nil {
		logger.Error("raycast demo failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.Logger) error {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return err
		}
		defer stop()
		logger.Info("recording CPU profile", zap.String("path", *cpuProfileFlag))
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layoutRand := rand.New(rand.NewSource(seed))

	cfg, watcher, err := initialScene(layoutRand)
	if err != nil {
		return err
	}
	logger.Info("scene ready",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("rects", len(cfg.Rects)),
		zap.Float64s("origin", []float64{cfg.Origin.X, cfg.Origin.Y}),
		zap.Int64("seed", seed),
	)

	g := newGame(cfg, logger, watcher, layoutRand)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(defaultTPS)
	return ebiten.RunGame(g)
}

// initialScene picks the starting layout: a scene file, a random scatter or
// the built-in three boxes, in that order. The watcher is nil unless -watch
// was given together with -scene.
func initialScene(rng *rand.Rand) (*scene.Config, *scene.Watcher, error) {
	if *scenePathFlag != "" {
		watcher := scene.NewWatcher(*scenePathFlag)
		cfg, _, err := watcher.Poll()
		if err != nil {
			return nil, nil, err
		}
		if !*watchSceneFlag {
			watcher = nil
		}
		return cfg, watcher, nil
	}
	cfg := scene.Default()
	if *randomRectsFlag > 0 {
		cfg = scatterLayout(rng, cfg, cfg.OriginVec(), *randomRectsFlag)
	}
	return cfg, nil, nil
}
