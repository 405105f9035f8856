package gamemap

// ClearSafeZone carves a (2·radius+1)² square of floor centered on center,
// skipping the outer ring. The center must already be floor: every new floor
// tile is then joined to center's region through the square itself, so a
// connected map stays connected. Returns false, leaving m untouched, when
// the center is a wall.
func ClearSafeZone(m *GameMap, center Point, radius int) bool {
	if !m.IsFloor(center.X, center.Y) {
		return false
	}
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if m.IsInterior(x, y) {
				m.Set(x, y, TileFloor)
			}
		}
	}
	return true
}
