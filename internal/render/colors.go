package render

import "github.com/gdamore/tcell/v2"

// Marker glyph fallbacks used when a scene entry has no glyph of its own.
const (
	StartGlyph = "🧙"
	EnemyGlyph = "👾"
	ItemGlyph  = "🎁"
)

// Terrain outside the lit area.
const (
	DimWall  = "🌑"
	DimFloor = "🔲"
)

var (
	styleMap    = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleRule   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)
