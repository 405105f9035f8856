package game

import (
	"fmt"

	"emoji-caverns/assets"
	"emoji-caverns/internal/gamemap"
	"emoji-caverns/internal/locale"
	"emoji-caverns/internal/render"
	"github.com/gdamore/tcell/v2"
)

// Viewer is an interactive tcell preview of a Dungeon.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	dungeon  *Dungeon
	level    *Level
	message  string
	fov      bool // dim everything outside sight of the arrival point
}

// sightRadius is the field-of-view radius used by the FOV overlay.
const sightRadius = 8

// NewViewer creates a Viewer on a local terminal screen.
func NewViewer(d *Dungeon) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewViewerWithScreen(screen, d), nil
}

// NewViewerWithScreen creates a Viewer on an already initialised screen,
// such as one backed by an SSH session.
func NewViewerWithScreen(screen tcell.Screen, d *Dungeon) *Viewer {
	v := &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		dungeon:  d,
	}
	v.show(d.Current())
	return v
}

// Goto jumps straight to floor, generating any floors above it.
func (v *Viewer) Goto(floor int) error {
	lvl, err := v.dungeon.Enter(floor)
	if err != nil {
		return err
	}
	v.show(lvl)
	return nil
}

// Run is the viewer loop. It returns when the user quits and finalises the
// screen.
func (v *Viewer) Run() {
	defer v.screen.Fini()
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.renderer.Resize()
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handle(keyToAction(ev)) {
				return
			}
		}
	}
}

// handle applies one action and reports whether the viewer keeps running.
func (v *Viewer) handle(a Action) bool {
	v.message = ""
	switch a {
	case ActionQuit:
		return false
	case ActionDescend:
		lvl, err := v.dungeon.Descend()
		if err != nil {
			v.message = locale.T("NO_DEEPER")
			break
		}
		v.show(lvl)
	case ActionAscend:
		lvl, err := v.dungeon.Ascend()
		if err != nil {
			v.message = locale.T("NO_SHALLOWER")
			break
		}
		v.show(lvl)
	case ActionToggleFOV:
		v.fov = !v.fov
	case ActionRecenter:
		v.renderer.CenterOn(v.level.Start.X, v.level.Start.Y)
	default:
		dx, dy := actionToDelta(a)
		v.renderer.Scroll(dx, dy)
	}
	return true
}

func (v *Viewer) show(lvl *Level) {
	v.level = lvl
	v.renderer.CenterOn(lvl.Arrival.X, lvl.Arrival.Y)
}

func (v *Viewer) scene() render.Scene {
	s := v.level.Scene()
	if v.fov {
		lit := gamemap.VisibleFrom(v.level.Map, v.level.Arrival, sightRadius)
		s.Lit = &lit
	}
	return s
}

func (v *Viewer) draw() {
	v.renderer.DrawFrame(v.scene())
	hint := v.message
	if hint == "" {
		hint = locale.T("HINT")
	}
	v.renderer.DrawHUD(Summary(v.dungeon, v.level), hint)
}

// Summary is the one-line description of a level shown by the viewer and
// printed by the text dump.
func Summary(d *Dungeon, lvl *Level) string {
	return locale.T("SUMMARY",
		lvl.Floor, assets.FloorName(lvl.Floor), d.Seed(),
		lvl.Map.Width(), lvl.Map.Height(), lvl.Map.FloorCount(),
		len(lvl.Enemies), len(lvl.Items))
}
