package game

import (
	"math"
	"math/rand"

	"emoji-caverns/assets"
	"emoji-caverns/internal/generate"
)

// MaxFloors is the deepest floor a Dungeon generates.
const MaxFloors = assets.Floors

// minEnemyDistance keeps enemies this many steps (Manhattan) from the start.
const minEnemyDistance = 5

// levelParams is everything needed to build and populate one floor.
type levelParams struct {
	gen          *generate.Config
	enemies      int
	items        int
	minEnemyDist int
}

// levelConfig scales generation parameters from floor 1 to MaxFloors and
// applies any overrides from opts.
func levelConfig(floor int, rng *rand.Rand, opts Options) levelParams {
	t := 0.0
	if MaxFloors > 1 {
		t = float64(floor-1) / float64(MaxFloors-1)
	}

	cfg := &generate.Config{
		Width:               lerpi(48, 96, t),
		Height:              lerpi(24, 48, t),
		WallPercent:         lerpi(45, 52, t),
		SmoothingIterations: lerpi(4, 5, t),
		VerifyConnectivity:  opts.VerifyConnectivity,
		Rand:                rng,
	}
	if opts.Width > 0 {
		cfg.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Height = opts.Height
	}
	if opts.WallPercent >= 0 {
		cfg.WallPercent = opts.WallPercent
	}
	if opts.Smoothing >= 0 {
		cfg.SmoothingIterations = opts.Smoothing
	}
	return levelParams{
		gen:          cfg,
		enemies:      lerpi(4, 18, t),
		items:        lerpi(3, 8, t),
		minEnemyDist: minEnemyDistance,
	}
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
