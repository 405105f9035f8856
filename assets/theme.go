package assets

// Floors is the deepest floor the dungeon generates.
const Floors = 10

// Emoji constants used as entity glyphs.
const (
	GlyphCrystalCrawl = "🦀"
	GlyphNeonSpecter  = "👻"
	GlyphPrismDrake   = "🐉"
	GlyphVoidTendril  = "🪱"
	GlyphThoughtLeech = "🧠"
	GlyphFractalGolem = "🗿"
	GlyphEntropyBloom = "🌀"
	GlyphMembraneWisp = "🫧"
	GlyphArchiveMoth  = "🦋"
	GlyphFoundryImp   = "👺"
	GlyphApexWarden   = "🤖"
)

// Theme is the pair of terrain glyphs used to draw one floor.
type Theme struct {
	Wall  string
	Floor string
}

// FloorNames maps floor number (1-indexed) to its name.
var FloorNames = [Floors + 1]string{
	"",
	"Crystalline Labs",
	"Bioluminescent Warrens",
	"Resonance Engine",
	"Fractured Observatory",
	"Apex Nexus",
	"Membrane of Echoes",
	"Calcified Archive",
	"Abyssal Foundry",
	"Dreaming Cortex",
	"Prismatic Heart",
}

var themes = [Floors + 1]Theme{
	{Wall: "🧱", Floor: "🟫"},
	{Wall: "🧊", Floor: "❄️"},
	{Wall: "🍄", Floor: "🌿"},
	{Wall: "⚙️", Floor: "✨"},
	{Wall: "🪨", Floor: "💠"},
	{Wall: "💀", Floor: "🔴"},
	{Wall: "🫧", Floor: "🌊"},
	{Wall: "📚", Floor: "📄"},
	{Wall: "🌋", Floor: "⚗️"},
	{Wall: "💭", Floor: "🌠"},
	{Wall: "🌈", Floor: "🌟"},
}

// clampFloor maps any floor number onto 1..Floors.
func clampFloor(floor int) int {
	return min(max(floor, 1), Floors)
}

// ThemeFor returns the terrain glyphs for floor.
func ThemeFor(floor int) Theme {
	return themes[clampFloor(floor)]
}

// FloorName returns the display name of floor.
func FloorName(floor int) string {
	return FloorNames[clampFloor(floor)]
}
