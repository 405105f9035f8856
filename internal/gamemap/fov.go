package gamemap

import "github.com/zyedidia/generic/mapset"

// octants maps the sweep coordinates of one octant onto world offsets:
// world = origin + (col*xx + row*xy, col*yx + row*yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// VisibleFrom returns every cell within radius that has line of sight to
// origin, computed by recursive shadowcasting. Walls are opaque but are
// themselves visible, so the set outlines the room around origin.
func VisibleFrom(m *GameMap, origin Point, radius int) mapset.Set[Point] {
	lit := mapset.New[Point]()
	if !m.InBounds(origin.X, origin.Y) {
		return lit
	}
	lit.Put(origin)
	for _, o := range octants {
		castLight(m, lit, origin, 1, 1.0, 0.0, radius, o)
	}
	return lit
}

func castLight(m *GameMap, lit mapset.Set[Point], origin Point, row int, start, end float64, radius int, o [4]int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false
		for dx := -j; dx <= 0; dx++ {
			p := Point{X: origin.X + dx*o[0] + dy*o[1], Y: origin.Y + dx*o[2] + dy*o[3]}
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}
			if dx*dx+dy*dy < radiusSq && m.InBounds(p.X, p.Y) {
				lit.Put(p)
			}

			opaque := m.IsWall(p.X, p.Y)
			switch {
			case blocked && opaque:
				newStart = rSlope
			case blocked:
				blocked = false
				start = newStart
			case opaque && j < radius:
				blocked = true
				castLight(m, lit, origin, j+1, start, lSlope, radius, o)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
