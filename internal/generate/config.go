package generate

import "math/rand"

// maxBridgePasses bounds how often Config.VerifyConnectivity re-runs the
// chain merge on a grid that still has more than one region.
const maxBridgePasses = 4

// Config drives procedural generation for one floor.
type Config struct {
	Width, Height       int
	WallPercent         int // 0–100 chance that an interior cell starts as wall
	SmoothingIterations int
	// VerifyConnectivity re-labels after the chain merge and bridges again
	// while more than one region remains.
	VerifyConnectivity bool
	Rand               *rand.Rand
}
