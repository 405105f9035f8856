package gamemap

import "strings"

// Point is an (x, y) grid coordinate. It is comparable and used as a map key.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |dx| + |dy| between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// GameMap holds the tile grid for one dungeon level as a flat row-major
// buffer. Dimensions are fixed at construction.
type GameMap struct {
	width, height int
	tiles         []TileKind
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	return &GameMap{
		width:  width,
		height: height,
		tiles:  make([]TileKind, width*height),
	}
}

// Width returns the number of columns.
func (m *GameMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *GameMap) Height() int { return m.height }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsPerimeter reports whether (x, y) lies on the outer ring.
func (m *GameMap) IsPerimeter(x, y int) bool {
	return m.InBounds(x, y) && (x == 0 || y == 0 || x == m.width-1 || y == m.height-1)
}

// IsInterior reports whether (x, y) is in bounds and off the outer ring.
func (m *GameMap) IsInterior(x, y int) bool {
	return x >= 1 && x < m.width-1 && y >= 1 && y < m.height-1
}

// Index converts (x, y) to its offset in the row-major buffer.
// ok is false when the coordinate is out of bounds.
func (m *GameMap) Index(x, y int) (idx int, ok bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	return y*m.width + x, true
}

// At returns the tile at (x, y). Out-of-bounds positions read as walls.
func (m *GameMap) At(x, y int) TileKind {
	i, ok := m.Index(x, y)
	if !ok {
		return TileWall
	}
	return m.tiles[i]
}

// Set replaces the tile at (x, y) and reports whether anything was written.
func (m *GameMap) Set(x, y int, k TileKind) bool {
	i, ok := m.Index(x, y)
	if !ok {
		return false
	}
	m.tiles[i] = k
	return true
}

// IsFloor returns true when (x, y) is in bounds and floor.
func (m *GameMap) IsFloor(x, y int) bool {
	return m.At(x, y) == TileFloor
}

// IsWall returns true when (x, y) is a wall or out of bounds.
func (m *GameMap) IsWall(x, y int) bool {
	return m.At(x, y) == TileWall
}

// Center returns the geometric center of the map.
func (m *GameMap) Center() Point {
	return Point{X: m.width / 2, Y: m.height / 2}
}

// Fill sets every tile to k.
func (m *GameMap) Fill(k TileKind) {
	for i := range m.tiles {
		m.tiles[i] = k
	}
}

// FloorCount returns the number of floor tiles.
func (m *GameMap) FloorCount() int {
	n := 0
	for _, t := range m.tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// FloorNeighbors3x3 counts floor tiles in the 3×3 block centered on (x, y),
// including (x, y) itself.
func (m *GameMap) FloorNeighbors3x3(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if m.IsFloor(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the map.
func (m *GameMap) Clone() *GameMap {
	c := &GameMap{width: m.width, height: m.height, tiles: make([]TileKind, len(m.tiles))}
	copy(c.tiles, m.tiles)
	return c
}

// CopyFrom overwrites m's tiles with src's. Both maps must share dimensions.
func (m *GameMap) CopyFrom(src *GameMap) {
	copy(m.tiles, src.tiles)
}

// Equal reports whether both maps have the same size and identical tiles.
func (m *GameMap) Equal(other *GameMap) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.tiles {
		if m.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// String renders the map as rows of '#' and '.'.
func (m *GameMap) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteString(m.At(x, y).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
