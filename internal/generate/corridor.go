package generate

import (
	"math/rand"

	"emoji-caverns/internal/gamemap"
)

// setFloor carves (x, y) unless it lies on or outside the outer ring.
func setFloor(gmap *gamemap.GameMap, x, y int) {
	if gmap.IsInterior(x, y) {
		gmap.Set(x, y, gamemap.TileFloor)
	}
}

// stampSquare carves a size×size block centered on p.
func stampSquare(gmap *gamemap.GameMap, p gamemap.Point, size int) {
	lo := -size / 2
	for dy := lo; dy < lo+size; dy++ {
		for dx := lo; dx < lo+size; dx++ {
			setFloor(gmap, p.X+dx, p.Y+dy)
		}
	}
}

// carveH digs a horizontal band of the given width across the interior,
// centered on row y.
func carveH(gmap *gamemap.GameMap, y, width int) {
	top := y - width/2
	for row := top; row < top+width; row++ {
		for x := 1; x < gmap.Width()-1; x++ {
			setFloor(gmap, x, row)
		}
	}
}

// carveV digs a vertical band of the given width across the interior,
// centered on column x.
func carveV(gmap *gamemap.GameMap, x, width int) {
	left := x - width/2
	for col := left; col < left+width; col++ {
		for y := 1; y < gmap.Height()-1; y++ {
			setFloor(gmap, col, y)
		}
	}
}

// carveWindingCorridor walks from one point to another one unit at a time,
// stamping a width×width brush at every position. When neither axis is
// aligned the step axis is a coin flip. Each step has a 1 in 20 chance of
// opening a small square room around the walker.
func carveWindingCorridor(gmap *gamemap.GameMap, rng *rand.Rand, from, to gamemap.Point, width int) {
	cur := from
	stampSquare(gmap, cur, width)
	for cur != to {
		moveX := cur.Y == to.Y
		if cur.X != to.X && cur.Y != to.Y {
			moveX = rng.Intn(2) == 0
		}
		if moveX {
			cur.X += sign(to.X - cur.X)
		} else {
			cur.Y += sign(to.Y - cur.Y)
		}
		stampSquare(gmap, cur, width)
		if rng.Intn(20) == 0 {
			stampSquare(gmap, cur, 3+rng.Intn(3))
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
