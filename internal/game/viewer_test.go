package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	d, err := NewDungeon(42, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return NewViewerWithScreen(ss, d)
}

func TestViewerFloorNavigation(t *testing.T) {
	v := newTestViewer(t)
	if v.level.Floor != 1 {
		t.Fatalf("viewer starts on floor %d; want 1", v.level.Floor)
	}
	if !v.handle(ActionAscend) || v.message == "" {
		t.Error("ascending from floor 1 should keep running and explain why nothing happened")
	}
	v.handle(ActionDescend)
	if v.level.Floor != 2 {
		t.Errorf("after descend floor = %d; want 2", v.level.Floor)
	}
	if v.message != "" {
		t.Errorf("unexpected message %q", v.message)
	}
	v.draw()
	if v.handle(ActionQuit) {
		t.Error("quit should stop the viewer")
	}
}

func TestViewerGoto(t *testing.T) {
	v := newTestViewer(t)
	if err := v.Goto(4); err != nil {
		t.Fatal(err)
	}
	if v.level.Floor != 4 || v.dungeon.Generated() != 4 {
		t.Errorf("goto 4: floor %d, generated %d", v.level.Floor, v.dungeon.Generated())
	}
	if err := v.Goto(MaxFloors + 1); err == nil {
		t.Error("goto past the last floor should fail")
	}
}

func TestViewerFOVToggle(t *testing.T) {
	v := newTestViewer(t)
	if v.scene().Lit != nil {
		t.Fatal("field of view should start disabled")
	}
	v.handle(ActionToggleFOV)
	s := v.scene()
	if s.Lit == nil {
		t.Fatal("toggling should enable the field of view")
	}
	if !s.Lit.Has(v.level.Arrival) {
		t.Error("the arrival tile must always be visible")
	}
	v.draw()
	v.handle(ActionToggleFOV)
	if v.scene().Lit != nil {
		t.Error("second toggle should disable the field of view")
	}
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionScrollN},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionScrollW},
		{tcell.NewEventKey(tcell.KeyRune, '>', tcell.ModNone), ActionDescend},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), ActionRecenter},
		{tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), ActionToggleFOV},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, c := range cases {
		if got := keyToAction(c.ev); got != c.want {
			t.Errorf("keyToAction(%v) = %d; want %d", c.ev.Name(), got, c.want)
		}
	}
}
