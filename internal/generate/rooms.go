package generate

import (
	"math/rand"

	"emoji-caverns/internal/gamemap"
)

// RoomFeature is an optional wall decoration stamped inside a room.
type RoomFeature uint8

const (
	FeatureNone RoomFeature = iota
	FeaturePillars
	FeatureChamber
	FeatureCheckerboard
)

// carveRoom clears a 5–9 sided rectangle at a random interior origin and
// gives one room in three a feature. The returned rectangle may extend past
// the map; only its interior part is carved.
func carveRoom(gmap *gamemap.GameMap, rng *rand.Rand) gamemap.Rect {
	origin := randomInterior(gmap, rng)
	rw := 5 + rng.Intn(5)
	rh := 5 + rng.Intn(5)
	room := gamemap.Rect{X1: origin.X, Y1: origin.Y, X2: origin.X + rw - 1, Y2: origin.Y + rh - 1}
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			setFloor(gmap, x, y)
		}
	}
	if rng.Intn(3) != 0 {
		return room
	}
	switch RoomFeature(1 + rng.Intn(3)) {
	case FeaturePillars:
		addPillars(gmap, rng, room)
	case FeatureChamber:
		addChamber(gmap, rng, room)
	case FeatureCheckerboard:
		addCheckerboard(gmap, rng, room)
	}
	return room
}

// setWall writes a wall on an interior cell that also lies inside room.
func setWall(gmap *gamemap.GameMap, room gamemap.Rect, x, y int) {
	if room.Contains(x, y) && gmap.IsInterior(x, y) {
		gmap.Set(x, y, gamemap.TileWall)
	}
}

// addPillars drops 1–4 single walls on a 3×3 lattice around the room center
// spaced a third of the room apart.
func addPillars(gmap *gamemap.GameMap, rng *rand.Rand, room gamemap.Rect) {
	cx, cy := room.Center()
	stepX, stepY := room.Width()/3, room.Height()/3
	for range 1 + rng.Intn(4) {
		x := cx + (rng.Intn(3)-1)*stepX
		y := cy + (rng.Intn(3)-1)*stepY
		setWall(gmap, room, x, y)
	}
}

// addChamber outlines a centered inner room at half size and punches one
// door at the middle of a random side.
func addChamber(gmap *gamemap.GameMap, rng *rand.Rand, room gamemap.Rect) {
	iw := max(3, room.Width()/2)
	ih := max(3, room.Height()/2)
	cx, cy := room.Center()
	in := gamemap.Rect{X1: cx - iw/2, Y1: cy - ih/2}
	in.X2 = in.X1 + iw - 1
	in.Y2 = in.Y1 + ih - 1
	for x := in.X1; x <= in.X2; x++ {
		setWall(gmap, room, x, in.Y1)
		setWall(gmap, room, x, in.Y2)
	}
	for y := in.Y1; y <= in.Y2; y++ {
		setWall(gmap, room, in.X1, y)
		setWall(gmap, room, in.X2, y)
	}
	mx, my := in.Center()
	door := [4]gamemap.Point{
		{X: mx, Y: in.Y1},
		{X: in.X2, Y: my},
		{X: mx, Y: in.Y2},
		{X: in.X1, Y: my},
	}[rng.Intn(4)]
	setFloor(gmap, door.X, door.Y)
}

// addCheckerboard walls off a third of the even-parity cells inside the
// room's edge.
func addCheckerboard(gmap *gamemap.GameMap, rng *rand.Rand, room gamemap.Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			if (x+y)%2 == 0 && rng.Intn(3) == 0 {
				setWall(gmap, room, x, y)
			}
		}
	}
}
