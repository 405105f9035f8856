package generate

import (
	"math/rand"
	"testing"

	"emoji-caverns/internal/gamemap"
)

func TestFindStartPositionPrefersCenter(t *testing.T) {
	gmap := gamemap.New(20, 20)
	stampSquare(gmap, gmap.Center(), 3)
	rng := rand.New(rand.NewSource(1))
	if got := FindStartPosition(gmap, rng); got != gmap.Center() {
		t.Errorf("start = %v; want center %v", got, gmap.Center())
	}
	fresh := rand.New(rand.NewSource(1))
	if rng.Int63() != fresh.Int63() {
		t.Error("taking the center should not draw from the random source")
	}
}

func TestFindStartPositionOnGeneratedMaps(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := defaultTestConfig(seed)
		gmap := Generate(cfg)
		p := FindStartPosition(gmap, cfg.Rand)
		if !gmap.IsInterior(p.X, p.Y) || !gmap.IsFloor(p.X, p.Y) {
			t.Errorf("seed=%d: start %v is not an interior floor tile", seed, p)
		}
	}
}

// Scenario: a lone 3×3 floor block far from the center.
func TestFindStartPositionIsolatedBlock(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := gamemap.New(40, 30)
		stampSquare(gmap, gamemap.Point{X: 3, Y: 3}, 3)
		p := FindStartPosition(gmap, rand.New(rand.NewSource(seed)))
		if !gmap.InBounds(p.X, p.Y) {
			t.Fatalf("seed=%d: start %v out of bounds", seed, p)
		}
		if !gmap.IsFloor(p.X, p.Y) {
			t.Errorf("seed=%d: start %v is a wall", seed, p)
		}
	}
}

func TestFindStartPositionFallbackCarvesCenter(t *testing.T) {
	gmap := gamemap.New(15, 11)
	p := FindStartPosition(gmap, rand.New(rand.NewSource(5)))
	if p != gmap.Center() {
		t.Fatalf("start = %v; want center %v", p, gmap.Center())
	}
	if got := gmap.FloorNeighbors3x3(p.X, p.Y); got != 9 {
		t.Errorf("fallback cleared %d tiles around the center; want 9", got)
	}
}

func TestFindRandomFloorTile(t *testing.T) {
	cases := []struct {
		name  string
		build func() *gamemap.GameMap
		check func(*testing.T, *gamemap.GameMap, gamemap.Point)
	}{
		{
			name: "open area",
			build: func() *gamemap.GameMap {
				g := gamemap.New(30, 20)
				for y := 1; y < 19; y++ {
					for x := 1; x < 29; x++ {
						g.Set(x, y, gamemap.TileFloor)
					}
				}
				return g
			},
			check: func(t *testing.T, g *gamemap.GameMap, p gamemap.Point) {
				if p.X < 3 || p.Y < 3 || p.X >= 27 || p.Y >= 17 {
					t.Errorf("%v outside the margin", p)
				}
				if !g.IsFloor(p.X, p.Y) {
					t.Errorf("%v is a wall", p)
				}
			},
		},
		{
			name: "scan fallback",
			build: func() *gamemap.GameMap {
				g := gamemap.New(30, 20)
				g.Set(1, 1, gamemap.TileFloor) // inside the margin band, skipped
				g.Set(9, 4, gamemap.TileFloor)
				g.Set(4, 12, gamemap.TileFloor)
				return g
			},
			check: func(t *testing.T, _ *gamemap.GameMap, p gamemap.Point) {
				if want := (gamemap.Point{X: 9, Y: 4}); p != want {
					t.Errorf("got %v; want first scanned floor %v", p, want)
				}
			},
		},
		{
			name:  "no floor",
			build: func() *gamemap.GameMap { return gamemap.New(30, 20) },
			check: func(t *testing.T, g *gamemap.GameMap, p gamemap.Point) {
				if p != g.Center() {
					t.Errorf("got %v; want center %v", p, g.Center())
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build()
			tc.check(t, g, FindRandomFloorTile(g, rand.New(rand.NewSource(17))))
		})
	}
}
