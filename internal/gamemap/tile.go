package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// String returns the single-character form used by text dumps.
func (k TileKind) String() string {
	if k == TileFloor {
		return "."
	}
	return "#"
}
