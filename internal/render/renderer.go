package render

import (
	"emoji-caverns/internal/gamemap"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved below the map.
const hudRows = 3

// Renderer draws a level preview onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(1, h-hudRows)),
	}
}

// Resize refits the viewport after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(1, h-hudRows)
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Scroll pans the camera by (dx, dy) tiles.
func (r *Renderer) Scroll(dx, dy int) { r.camera.Scroll(dx, dy) }

// DrawFrame renders the terrain and then the markers, items under enemies
// under the start point.
func (r *Renderer) DrawFrame(s Scene) {
	r.screen.Clear()
	r.camera.Clamp(s.Map.Width(), s.Map.Height())
	r.drawMap(s)
	for _, m := range s.Items {
		if s.visible(m.Pos) {
			r.drawMarker(m, ItemGlyph)
		}
	}
	for _, m := range s.Enemies {
		if s.visible(m.Pos) {
			r.drawMarker(m, EnemyGlyph)
		}
	}
	r.drawMarker(Marker{Pos: s.Start}, StartGlyph)
}

func (r *Renderer) drawMap(s Scene) {
	for y := 0; y < s.Map.Height(); y++ {
		for x := 0; x < s.Map.Width(); x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			floor := s.Map.IsFloor(x, y)
			var glyph string
			switch {
			case s.visible(gamemap.Point{X: x, Y: y}) && floor:
				glyph = s.Floor
			case s.visible(gamemap.Point{X: x, Y: y}):
				glyph = s.Wall
			case floor:
				glyph = DimFloor
			default:
				glyph = DimWall
			}
			r.putGlyph(sx, sy, glyph, styleMap)
		}
	}
}

func (r *Renderer) drawMarker(m Marker, fallback string) {
	sx, sy, onScreen := r.camera.WorldToScreen(m.Pos.X, m.Pos.Y)
	if !onScreen {
		return
	}
	glyph := m.Glyph
	if glyph == "" {
		glyph = fallback
	}
	r.putGlyph(sx, sy, glyph, styleMap)
}

// DrawHUD renders a rule, a status line and a key hint below the map.
func (r *Renderer) DrawHUD(status, hint string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows
	r.drawHLine(hudY)
	r.drawText(0, hudY+1, status, styleStatus)
	r.drawText(0, hudY+2, hint, styleHint)
	r.screen.Show()
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func (r *Renderer) drawHLine(y int) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, styleRule)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
