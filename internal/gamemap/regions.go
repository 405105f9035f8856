package gamemap

import "github.com/zyedidia/generic/mapset"

// cardinal holds the 4-connectivity neighbor offsets.
var cardinal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// RegionMap is a label buffer parallel to a GameMap. Label 0 means wall or
// unlabeled; labels 1..Count() identify 4-connected floor regions.
type RegionMap struct {
	width, height int
	labels        []int
	firsts        []Point // firsts[id-1] is the first cell of region id in row-major order
}

// LabelRegions flood-fills every floor tile of m with 4-connectivity.
// Region ids are handed out in row-major scan order, so the seed of each
// flood is also the region's first cell in scan order.
//
// Time: O(W·H). Memory: one W·H int buffer plus the BFS queue.
func LabelRegions(m *GameMap) *RegionMap {
	r := &RegionMap{
		width:  m.width,
		height: m.height,
		labels: make([]int, len(m.tiles)),
	}
	var queue []int
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i0 := y*m.width + x
			if m.tiles[i0] != TileFloor || r.labels[i0] != 0 {
				continue
			}
			id := len(r.firsts) + 1
			r.firsts = append(r.firsts, Point{X: x, Y: y})
			r.labels[i0] = id
			queue = append(queue[:0], i0)
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := u%m.width, u/m.width
				for _, d := range cardinal {
					vi, ok := m.Index(ux+d[0], uy+d[1])
					if !ok || m.tiles[vi] != TileFloor || r.labels[vi] != 0 {
						continue
					}
					r.labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
	}
	return r
}

// Count returns the number of labeled regions.
func (r *RegionMap) Count() int { return len(r.firsts) }

// At returns the region id at (x, y), or 0 for walls and out-of-bounds cells.
func (r *RegionMap) At(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0
	}
	return r.labels[y*r.width+x]
}

// First returns the first cell, in row-major order, that carries region id.
func (r *RegionMap) First(id int) (Point, bool) {
	if id < 1 || id > len(r.firsts) {
		return Point{}, false
	}
	return r.firsts[id-1], true
}

// Size returns how many cells carry region id.
func (r *RegionMap) Size(id int) int {
	n := 0
	for _, l := range r.labels {
		if l == id {
			n++
		}
	}
	return n
}

// Reachable returns every floor cell 4-connected to from. The set is empty
// when from is not a floor tile.
func Reachable(m *GameMap, from Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !m.IsFloor(from.X, from.Y) {
		return visited
	}
	visited.Put(from)
	queue := []Point{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range cardinal {
			next := cur.Add(d[0], d[1])
			if !m.IsFloor(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// IsConnected reports whether all floor tiles form a single 4-connected
// region. A map without floor counts as connected.
func IsConnected(m *GameMap) bool {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.IsFloor(x, y) {
				return Reachable(m, Point{X: x, Y: y}).Size() == m.FloorCount()
			}
		}
	}
	return true
}
