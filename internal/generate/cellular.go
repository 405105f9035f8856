package generate

import (
	"math/rand"

	"emoji-caverns/internal/gamemap"
)

// RandomFill returns a w×h map whose interior cells are walls with
// probability wallPercent/100. The outer ring is always wall.
func RandomFill(w, h, wallPercent int, rng *rand.Rand) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if rng.Intn(100) >= wallPercent {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}
	return gmap
}

// Smooth runs iterations passes of the cave automaton. A wall survives with
// at least 5 wall neighbors; a floor turns to wall with at least 6. Cells
// outside the grid count as walls. Each pass reads only the previous pass.
func Smooth(gmap *gamemap.GameMap, iterations int) {
	if iterations <= 0 {
		return
	}
	prev := gmap.Clone()
	for range iterations {
		for y := 0; y < gmap.Height(); y++ {
			for x := 0; x < gmap.Width(); x++ {
				walls := countWallNeighbors(prev, x, y)
				next := gamemap.TileFloor
				if prev.IsWall(x, y) {
					if walls >= 5 {
						next = gamemap.TileWall
					}
				} else if walls >= 6 {
					next = gamemap.TileWall
				}
				gmap.Set(x, y, next)
			}
		}
		prev.CopyFrom(gmap)
	}
}

// countWallNeighbors counts walls among the 8 cells around (x, y).
func countWallNeighbors(gmap *gamemap.GameMap, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if gmap.IsWall(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// EnforceBorder stamps the outer ring to wall.
func EnforceBorder(gmap *gamemap.GameMap) {
	w, h := gmap.Width(), gmap.Height()
	for x := 0; x < w; x++ {
		gmap.Set(x, 0, gamemap.TileWall)
		gmap.Set(x, h-1, gamemap.TileWall)
	}
	for y := 0; y < h; y++ {
		gmap.Set(0, y, gamemap.TileWall)
		gmap.Set(w-1, y, gamemap.TileWall)
	}
}
