package generate

import (
	"math"
	"math/rand"

	"emoji-caverns/internal/gamemap"
)

// randomInterior returns a uniformly random cell off the outer ring.
func randomInterior(gmap *gamemap.GameMap, rng *rand.Rand) gamemap.Point {
	return gamemap.Point{
		X: 1 + rng.Intn(gmap.Width()-2),
		Y: 1 + rng.Intn(gmap.Height()-2),
	}
}

// CarveFeatures overwrites the smoothed cave with the fixed feature
// sequence: main corridors, winding corridors, rooms, cave blobs, pools.
// It returns the rectangles of the rooms it cleared; room decorations are
// the only walls it writes, and they stay inside these rectangles.
func CarveFeatures(gmap *gamemap.GameMap, rng *rand.Rand) []gamemap.Rect {
	w := gmap.Width()
	carveMainCorridors(gmap, rng)
	for range 2 + rng.Intn(3) {
		from := randomInterior(gmap, rng)
		to := randomInterior(gmap, rng)
		carveWindingCorridor(gmap, rng, from, to, 1+rng.Intn(2))
	}
	rooms := make([]gamemap.Rect, 0, 3+w/20)
	for range 3 + w/20 {
		rooms = append(rooms, carveRoom(gmap, rng))
	}
	for range 2 + w/30 {
		carveCave(gmap, rng)
	}
	for range 1 + w/40 {
		carvePool(gmap, rng)
	}
	return rooms
}

func carveMainCorridors(gmap *gamemap.GameMap, rng *rand.Rand) {
	carveH(gmap, gmap.Height()/2, 2+rng.Intn(2))
	carveV(gmap, gmap.Width()/2, 2+rng.Intn(2))
}

// carveCave opens a rough disc: every cell closer than radius plus a
// per-cell jitter in [-1, 1) becomes floor.
func carveCave(gmap *gamemap.GameMap, rng *rand.Rand) {
	c := randomInterior(gmap, rng)
	radius := 5 + rng.Intn(5)
	reach := radius + 1
	for y := c.Y - reach; y <= c.Y+reach; y++ {
		for x := c.X - reach; x <= c.X+reach; x++ {
			if !gmap.IsInterior(x, y) {
				continue
			}
			jitter := rng.Float64()*2 - 1
			if dist(c, x, y) <= float64(radius)+jitter {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}
}

// carvePool scatters 50 samples around a center; samples inside the pool
// radius become floor and usually drag their 3×3 block along.
func carvePool(gmap *gamemap.GameMap, rng *rand.Rand) {
	c := randomInterior(gmap, rng)
	size := 3 + rng.Intn(5)
	for range 50 {
		p := c.Add(rng.Intn(2*size+1)-size, rng.Intn(2*size+1)-size)
		if dist(c, p.X, p.Y) > float64(size) {
			continue
		}
		setFloor(gmap, p.X, p.Y)
		if rng.Float64() < 0.7 {
			stampSquare(gmap, p, 3)
		}
	}
}

func dist(c gamemap.Point, x, y int) float64 {
	return math.Hypot(float64(x-c.X), float64(y-c.Y))
}
