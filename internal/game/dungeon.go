package game

import (
	"errors"
	"fmt"
	"math/rand"

	"emoji-caverns/assets"
	"emoji-caverns/internal/gamemap"
	"emoji-caverns/internal/generate"
	"emoji-caverns/internal/render"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNoDeeper    = errors.New("no deeper floor")
	ErrNoShallower = errors.New("no shallower floor")
)

// Options overrides the per-floor generation parameters. Zero width or
// height and negative wall percent or smoothing keep the floor's defaults.
type Options struct {
	Width, Height      int
	WallPercent        int
	Smoothing          int
	VerifyConnectivity bool
}

// DefaultOptions keeps every per-floor default.
func DefaultOptions() Options {
	return Options{WallPercent: -1, Smoothing: -1}
}

// Validate rejects sizes the generator cannot handle.
func (o Options) Validate() error {
	if o.Width != 0 && o.Width < 3 {
		return fmt.Errorf("width %d: must be at least 3", o.Width)
	}
	if o.Height != 0 && o.Height < 3 {
		return fmt.Errorf("height %d: must be at least 3", o.Height)
	}
	if o.WallPercent > 100 {
		return fmt.Errorf("wall percent %d: must be at most 100", o.WallPercent)
	}
	return nil
}

// Level is one generated and populated floor.
type Level struct {
	Floor   int
	Map     *gamemap.GameMap
	Start   gamemap.Point
	Arrival gamemap.Point // where the viewer lands on the latest visit
	Enemies []generate.EnemySpawn
	Items   map[gamemap.Point]generate.ItemSpawn
	// Occupied holds every enemy and item position.
	Occupied mapset.Set[gamemap.Point]
}

// Dungeon generates floors in order from one seeded random source, so the
// same seed and the same sequence of calls always produce the same floors.
type Dungeon struct {
	seed    int64
	rng     *rand.Rand
	opts    Options
	levels  []*Level // levels[i] is floor i+1
	current int      // 1-indexed, 0 before the first floor is entered
}

// NewDungeon creates a dungeon for seed. Nothing is generated until a floor
// is requested.
func NewDungeon(seed int64, opts Options) (*Dungeon, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Dungeon{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		opts: opts,
	}, nil
}

// Seed returns the seed the dungeon was created with.
func (d *Dungeon) Seed() int64 { return d.seed }

// Generated returns how many floors exist so far.
func (d *Dungeon) Generated() int { return len(d.levels) }

// Level returns floor, generating it and every floor above it first.
func (d *Dungeon) Level(floor int) (*Level, error) {
	if floor < 1 || floor > MaxFloors {
		return nil, fmt.Errorf("floor %d: must be between 1 and %d", floor, MaxFloors)
	}
	for len(d.levels) < floor {
		d.levels = append(d.levels, d.build(len(d.levels)+1))
	}
	return d.levels[floor-1], nil
}

// build runs the full pipeline for one floor.
func (d *Dungeon) build(floor int) *Level {
	p := levelConfig(floor, d.rng, d.opts)
	gmap := generate.Generate(p.gen)
	start := generate.FindStartPosition(gmap, d.rng)
	gamemap.ClearSafeZone(gmap, start, 1)

	lvl := &Level{
		Floor:    floor,
		Map:      gmap,
		Start:    start,
		Arrival:  start,
		Enemies:  generate.PlaceEnemies(gmap, d.rng, p.enemies, start, p.minEnemyDist, assets.EnemyTable(floor)),
		Items:    generate.PlaceItems(gmap, d.rng, p.items, assets.ItemTable(floor)),
		Occupied: mapset.New[gamemap.Point](),
	}
	for _, e := range lvl.Enemies {
		lvl.Occupied.Put(e.Pos)
	}
	for pos := range lvl.Items {
		lvl.Occupied.Put(pos)
	}
	return lvl
}

// Current returns the floor being viewed, entering floor 1 if none is.
func (d *Dungeon) Current() *Level {
	if d.current == 0 {
		lvl, _ := d.Level(1)
		d.current = 1
		return lvl
	}
	return d.levels[d.current-1]
}

// Descend moves one floor down.
func (d *Dungeon) Descend() (*Level, error) {
	d.Current()
	if d.current >= MaxFloors {
		return nil, ErrNoDeeper
	}
	return d.Enter(d.current + 1)
}

// Ascend moves one floor up.
func (d *Dungeon) Ascend() (*Level, error) {
	d.Current()
	if d.current <= 1 {
		return nil, ErrNoShallower
	}
	return d.Enter(d.current - 1)
}

// Enter switches to floor, generating it and every floor above it first.
// Revisited floors pick a fresh arrival tile.
func (d *Dungeon) Enter(floor int) (*Level, error) {
	if floor == d.current && floor > 0 {
		return d.levels[floor-1], nil
	}
	fresh := floor > len(d.levels)
	lvl, err := d.Level(floor)
	if err != nil {
		return nil, err
	}
	if !fresh {
		lvl.Arrival = generate.FindRandomFloorTile(lvl.Map, d.rng)
	}
	d.current = floor
	return lvl, nil
}

// Scene converts the level into something the renderer can draw.
func (l *Level) Scene() render.Scene {
	theme := assets.ThemeFor(l.Floor)
	s := render.Scene{
		Map:   l.Map,
		Wall:  theme.Wall,
		Floor: theme.Floor,
		Start: l.Start,
	}
	for _, e := range l.Enemies {
		s.Enemies = append(s.Enemies, render.Marker{Pos: e.Pos, Glyph: e.Entry.Glyph})
	}
	for _, it := range l.sortedItems() {
		s.Items = append(s.Items, render.Marker{Pos: it.Pos, Glyph: it.Item.Glyph})
	}
	return s
}

// sortedItems returns the items in row-major order of their positions.
func (l *Level) sortedItems() []generate.ItemSpawn {
	out := make([]generate.ItemSpawn, 0, len(l.Items))
	for y := 0; y < l.Map.Height(); y++ {
		for x := 0; x < l.Map.Width(); x++ {
			if it, ok := l.Items[gamemap.Point{X: x, Y: y}]; ok {
				out = append(out, it)
			}
		}
	}
	return out
}
