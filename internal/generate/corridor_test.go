package generate

import (
	"math/rand"
	"testing"

	"emoji-caverns/internal/gamemap"
)

func TestCarveWindingCorridorJoinsEndpoints(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gmap := gamemap.New(40, 25)
		from := randomInterior(gmap, rng)
		to := randomInterior(gmap, rng)
		carveWindingCorridor(gmap, rng, from, to, 1+rng.Intn(2))

		if !gmap.IsFloor(from.X, from.Y) || !gmap.IsFloor(to.X, to.Y) {
			t.Fatalf("seed=%d: endpoints %v %v not carved", seed, from, to)
		}
		if !gamemap.Reachable(gmap, from).Has(to) {
			t.Errorf("seed=%d: %v cannot reach %v", seed, from, to)
		}
	}
}

func TestCarveWindingCorridorNeverTouchesBorder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gmap := gamemap.New(10, 10)
	// Hug the edges with the widest brush; room stamps spill further.
	carveWindingCorridor(gmap, rng, gamemap.Point{X: 1, Y: 1}, gamemap.Point{X: 8, Y: 8}, 2)
	carveWindingCorridor(gmap, rng, gamemap.Point{X: 8, Y: 1}, gamemap.Point{X: 1, Y: 8}, 2)
	for i := 0; i < 10; i++ {
		for _, p := range []gamemap.Point{{X: i, Y: 0}, {X: i, Y: 9}, {X: 0, Y: i}, {X: 9, Y: i}} {
			if gmap.IsFloor(p.X, p.Y) {
				t.Fatalf("border tile %v was carved", p)
			}
		}
	}
}

func TestStampSquareFootprint(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{1, 1},
		{2, 4},
		{3, 9},
		{5, 25},
	}
	for _, c := range cases {
		gmap := gamemap.New(12, 12)
		stampSquare(gmap, gamemap.Point{X: 6, Y: 6}, c.size)
		if got := gmap.FloorCount(); got != c.want {
			t.Errorf("size %d: carved %d tiles; want %d", c.size, got, c.want)
		}
		if !gmap.IsFloor(6, 6) {
			t.Errorf("size %d: center not carved", c.size)
		}
	}
}

func TestCarveBandsSpanInterior(t *testing.T) {
	gmap := gamemap.New(20, 12)
	carveH(gmap, 6, 3)
	if got, want := gmap.FloorCount(), 18*3; got != want {
		t.Errorf("horizontal band: %d tiles; want %d", got, want)
	}
	gmap = gamemap.New(20, 12)
	carveV(gmap, 10, 2)
	if got, want := gmap.FloorCount(), 10*2; got != want {
		t.Errorf("vertical band: %d tiles; want %d", got, want)
	}
}
