package generate

import (
	"math/rand"

	"emoji-caverns/internal/gamemap"
)

// FindStartPosition picks the player's arrival point. It prefers the map
// center, then an open random spot, then any floor tile with a floor
// neighbor (cleared to 3×3), and finally clears a 3×3 block at the center.
// The returned tile is always floor.
func FindStartPosition(gmap *gamemap.GameMap, rng *rand.Rand) gamemap.Point {
	c := gmap.Center()
	if gmap.IsFloor(c.X, c.Y) && gmap.IsFloor(c.X+1, c.Y) && gmap.IsFloor(c.X, c.Y+1) {
		return c
	}
	for range maxPlacementAttempts {
		p := randomInterior(gmap, rng)
		if gmap.IsFloor(p.X, p.Y) && gmap.FloorNeighbors3x3(p.X, p.Y) >= 5 {
			return p
		}
	}
	for range maxPlacementAttempts {
		p := randomInterior(gmap, rng)
		if gmap.IsFloor(p.X, p.Y) && hasFloorNeighbor(gmap, p) {
			stampSquare(gmap, p, 3)
			return p
		}
	}
	stampSquare(gmap, c, 3)
	return c
}

// FindRandomFloorTile picks an open floor tile at least 3 cells from the
// edges. It falls back to the first floor tile in scan order inside that
// margin, and then to the map center whatever its tile.
func FindRandomFloorTile(gmap *gamemap.GameMap, rng *rand.Rand) gamemap.Point {
	const margin = 3
	w, h := gmap.Width()-2*margin, gmap.Height()-2*margin
	if w > 0 && h > 0 {
		for range maxPlacementAttempts {
			p := gamemap.Point{X: margin + rng.Intn(w), Y: margin + rng.Intn(h)}
			if gmap.IsFloor(p.X, p.Y) && gmap.FloorNeighbors3x3(p.X, p.Y) >= 5 {
				return p
			}
		}
	}
	for y := margin; y < gmap.Height()-margin; y++ {
		for x := margin; x < gmap.Width()-margin; x++ {
			if gmap.IsFloor(x, y) {
				return gamemap.Point{X: x, Y: y}
			}
		}
	}
	return gmap.Center()
}

func hasFloorNeighbor(gmap *gamemap.GameMap, p gamemap.Point) bool {
	return gmap.IsFloor(p.X+1, p.Y) || gmap.IsFloor(p.X-1, p.Y) ||
		gmap.IsFloor(p.X, p.Y+1) || gmap.IsFloor(p.X, p.Y-1)
}
