package generate

import "emoji-caverns/internal/gamemap"

// Generate builds one floor: random fill, smoothing, border, features and
// connectivity repair, all driven by cfg.Rand. Width and height must be at
// least 3.
func Generate(cfg *Config) *gamemap.GameMap {
	gmap := RandomFill(cfg.Width, cfg.Height, cfg.WallPercent, cfg.Rand)
	Smooth(gmap, cfg.SmoothingIterations)
	EnforceBorder(gmap)
	CarveFeatures(gmap, cfg.Rand)
	ResolveConnectivity(gmap, cfg.Rand, cfg.VerifyConnectivity)
	return gmap
}
