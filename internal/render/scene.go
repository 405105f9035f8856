package render

import (
	"emoji-caverns/internal/gamemap"
	"github.com/zyedidia/generic/mapset"
)

// Marker is one entity drawn on top of the terrain.
type Marker struct {
	Pos   gamemap.Point
	Glyph string
}

// Scene is everything needed to draw one generated level.
type Scene struct {
	Map     *gamemap.GameMap
	Wall    string // terrain glyphs for the emoji renderer
	Floor   string
	Start   gamemap.Point
	Enemies []Marker
	Items   []Marker
	// Lit, when set, limits full drawing to these tiles; the rest of the
	// terrain is drawn dimmed and their markers are hidden.
	Lit *mapset.Set[gamemap.Point]
}

// visible reports whether p is drawn at full brightness.
func (s Scene) visible(p gamemap.Point) bool {
	return s.Lit == nil || s.Lit.Has(p)
}
