package generate

import (
	"math/rand"

	"emoji-caverns/internal/gamemap"
)

// ResolveConnectivity labels the floor regions of gmap and, when there is
// more than one, bridges region i to region i+1 with a winding corridor
// between their first cells in scan order. It returns the region count
// found before any bridging.
//
// With verify set the grid is labeled again after each chain merge and the
// merge repeats, at most maxBridgePasses times, while regions remain split.
func ResolveConnectivity(gmap *gamemap.GameMap, rng *rand.Rand, verify bool) int {
	regions := gamemap.LabelRegions(gmap)
	initial := regions.Count()
	for pass := 0; regions.Count() > 1; pass++ {
		bridgeChain(gmap, rng, regions)
		if !verify || pass+1 >= maxBridgePasses {
			break
		}
		regions = gamemap.LabelRegions(gmap)
	}
	return initial
}

func bridgeChain(gmap *gamemap.GameMap, rng *rand.Rand, regions *gamemap.RegionMap) {
	for id := 1; id < regions.Count(); id++ {
		a, _ := regions.First(id)
		b, _ := regions.First(id + 1)
		carveWindingCorridor(gmap, rng, a, b, 1+rng.Intn(2))
	}
}
