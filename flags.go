package main

import "flag"

// Command-line flags that choose the scene source and control optional
// overlays and diagnostics.
var (
	// scenePathFlag loads obstacles and the starting origin from a YAML file.
	scenePathFlag = flag.String("scene", "", "YAML scene file to load instead of the built-in layout")

	// watchSceneFlag polls the scene file and reloads it when it changes.
	watchSceneFlag = flag.Bool("watch", false, "reload the -scene file whenever it changes")

	// randomRectsFlag scatters random rectangles when no scene file is given.
	randomRectsFlag = flag.Int("random", 0, "scatter this many random rectangles instead of the built-in layout")

	seedFlag = flag.Int64("seed", 0, "seed for random layouts (0 uses the clock)")

	// showFanFlag starts with the visibility fan overlay enabled.
	showFanFlag = flag.Bool("fan", false, "start with the visibility fan overlay enabled (toggle with F)")

	// fanRaysFlag sets how many rays the visibility fan casts.
	fanRaysFlag = flag.Int("fan-rays", defaultFanRays, "number of rays in the visibility fan")

	// fovDegreesFlag adjusts the opening angle of the visibility fan.
	fovDegreesFlag = flag.Float64("fov-deg", defaultFOVDegrees, "field of view of the visibility fan (degrees)")

	// debugFlag enables the FPS and hit details overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and hit details overlay")

	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn or error")

	// cpuProfileFlag writes a pprof CPU profile for the lifetime of the window.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
