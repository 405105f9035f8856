package generate

import (
	"math/rand"

	"emoji-caverns/internal/gamemap"
)

// maxPlacementAttempts caps the rejection sampling for each entity.
const maxPlacementAttempts = 100

// EnemySpawnEntry describes one possible enemy with its derived stats.
type EnemySpawnEntry struct {
	Glyph      string
	Name       string
	Attack     int
	Defense    int
	MaxHP      int
	SightRange int
}

// EnemySpawn describes one enemy to create.
type EnemySpawn struct {
	Entry EnemySpawnEntry
	Pos   gamemap.Point
}

// ItemSpawn describes one item to create.
type ItemSpawn struct {
	Item Item
	Pos  gamemap.Point
}

// PlaceEnemies samples up to count enemy positions on floor tiles at least
// minDist (Manhattan) from ref. A slot whose attempts run out is skipped,
// so fewer than count enemies may come back. Kinds are picked uniformly.
func PlaceEnemies(gmap *gamemap.GameMap, rng *rand.Rand, count int, ref gamemap.Point, minDist int, kinds []EnemySpawnEntry) []EnemySpawn {
	if len(kinds) == 0 {
		return nil
	}
	var out []EnemySpawn
	for range count {
		for range maxPlacementAttempts {
			p := randomInterior(gmap, rng)
			if !gmap.IsFloor(p.X, p.Y) || p.Manhattan(ref) < minDist {
				continue
			}
			out = append(out, EnemySpawn{Entry: kinds[rng.Intn(len(kinds))], Pos: p})
			break
		}
	}
	return out
}

// PlaceItems samples up to count distinct floor tiles and builds an item
// for each from a uniformly chosen kind. Kinds missing from the catalog are
// ignored. Slots whose attempts run out are skipped.
func PlaceItems(gmap *gamemap.GameMap, rng *rand.Rand, count int, kinds []ItemKind) map[gamemap.Point]ItemSpawn {
	out := make(map[gamemap.Point]ItemSpawn)
	var catalog []Item
	for _, k := range kinds {
		if item, ok := NewItem(k); ok {
			catalog = append(catalog, item)
		}
	}
	if len(catalog) == 0 {
		return out
	}
	for range count {
		for range maxPlacementAttempts {
			p := randomInterior(gmap, rng)
			if !gmap.IsFloor(p.X, p.Y) {
				continue
			}
			if _, taken := out[p]; taken {
				continue
			}
			out[p] = ItemSpawn{Item: catalog[rng.Intn(len(catalog))], Pos: p}
			break
		}
	}
	return out
}
