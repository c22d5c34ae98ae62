package main

import (
	"flag"
	"image/color"

	"github.com/kelseyhightower/envconfig"
)

// Rendering, input and layout constants used throughout the demo. Window
// dimensions come from the scene config rather than from here.
const (
	windowTitle       = "RayCasting Collisions!"
	defaultTPS        = 60
	markerRadius      = 3
	originRadius      = 1
	aimStrokeWidth    = 1
	fanStrokeWidth    = 1
	moveSpeed         = 2
	watchInterval     = defaultTPS / 2
	defaultFanRays    = 90
	fanRayStep        = 10
	minFanRays        = 1
	maxFanRays        = 720
	defaultFOVDegrees = 90.0
	scatterCount      = 12
	scatterMinSize    = 10
	scatterMaxSize    = 40
	scatterMargin     = 8
	scatterExclusion  = 24
	helpTextX         = 20
	helpTextBottom    = 40
)

var (
	backgroundColor = color.RGBA{0, 0, 128, 255}
	rectColor       = color.RGBA{255, 255, 255, 255}
	originColor     = color.RGBA{255, 0, 0, 255}
	aimColor        = color.RGBA{255, 0, 0, 255}
	occludedColor   = color.RGBA{255, 140, 0, 160}
	hitColor        = color.RGBA{0, 255, 0, 255}
	fanColor        = color.RGBA{255, 255, 0, 70}
)

// envSettings are defaults read from RAYCAST_* environment variables. An
// explicit command-line flag always wins.
type envSettings struct {
	Scene    string `envconfig:"SCENE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

func loadEnvSettings() (envSettings, error) {
	var s envSettings
	if err := envconfig.Process("raycast", &s); err != nil {
		return envSettings{}, err
	}
	return s, nil
}

// applyEnvDefaults copies environment settings into flags the user did not
// set explicitly. Must run after flag.Parse.
func applyEnvDefaults(env envSettings) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["scene"] && env.Scene != "" {
		*scenePathFlag = env.Scene
	}
	if !set["log-level"] && env.LogLevel != "" {
		*logLevelFlag = env.LogLevel
	}
	if !set["debug"] && env.Debug {
		*debugFlag = true
	}
}
