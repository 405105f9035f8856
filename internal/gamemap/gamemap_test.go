package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewIsAllWall(t *testing.T) {
	m := New(6, 4)
	if m.Width() != 6 || m.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 6x4", m.Width(), m.Height())
	}
	if m.FloorCount() != 0 {
		t.Errorf("new map has %d floor tiles, want 0", m.FloorCount())
	}
}

func TestSetAndAt(t *testing.T) {
	m := New(5, 5)
	if m.At(2, 3) != TileWall {
		t.Fatal("expected TileWall at (2,3) before any Set")
	}
	if !m.Set(2, 3, TileFloor) {
		t.Fatal("Set inside bounds should report a write")
	}
	if m.At(2, 3) != TileFloor {
		t.Fatal("Set should be reflected by subsequent At")
	}
	if !m.IsFloor(2, 3) || m.IsWall(2, 3) {
		t.Error("IsFloor/IsWall disagree with At")
	}
}

func TestOutOfBoundsReadsWallAndIgnoresWrites(t *testing.T) {
	m := New(5, 5)
	for _, p := range []Point{{-1, 0}, {0, -1}, {5, 2}, {2, 5}} {
		if m.Set(p.X, p.Y, TileFloor) {
			t.Errorf("Set(%d,%d) wrote outside the grid", p.X, p.Y)
		}
		if !m.IsWall(p.X, p.Y) {
			t.Errorf("IsWall(%d,%d) = false, out of bounds must read as wall", p.X, p.Y)
		}
	}
	if m.FloorCount() != 0 {
		t.Errorf("out-of-bounds writes leaked %d floor tiles", m.FloorCount())
	}
}

func TestIndexRowMajor(t *testing.T) {
	m := New(7, 3)
	i, ok := m.Index(4, 2)
	if !ok || i != 2*7+4 {
		t.Errorf("Index(4,2) = %d,%v; want %d,true", i, ok, 2*7+4)
	}
	if _, ok := m.Index(7, 0); ok {
		t.Error("Index(7,0) should be out of bounds")
	}
}

func TestPerimeterAndInterior(t *testing.T) {
	m := New(5, 4)
	cases := []struct {
		name      string
		x, y      int
		perimeter bool
		interior  bool
	}{
		{"top-left corner", 0, 0, true, false},
		{"bottom edge", 2, 3, true, false},
		{"right edge", 4, 1, true, false},
		{"interior", 2, 2, false, true},
		{"out of bounds", 9, 9, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.IsPerimeter(tc.x, tc.y); got != tc.perimeter {
				t.Errorf("IsPerimeter(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.perimeter)
			}
			if got := m.IsInterior(tc.x, tc.y); got != tc.interior {
				t.Errorf("IsInterior(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.interior)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := New(4, 4)
	m.Set(1, 1, TileFloor)
	c := m.Clone()
	if !c.Equal(m) {
		t.Fatal("clone should equal original")
	}
	c.Set(2, 2, TileFloor)
	if m.IsFloor(2, 2) {
		t.Error("writing to the clone changed the original")
	}
	if c.Equal(m) {
		t.Error("Equal should notice the differing tile")
	}
}

func TestFloorNeighbors3x3(t *testing.T) {
	m := New(5, 5)
	m.Set(1, 1, TileFloor)
	m.Set(2, 2, TileFloor)
	m.Set(3, 3, TileFloor)
	m.Set(4, 4, TileFloor) // outside the block around (2,2)
	if got := m.FloorNeighbors3x3(2, 2); got != 3 {
		t.Errorf("FloorNeighbors3x3(2,2) = %d; want 3", got)
	}
	if got := m.FloorNeighbors3x3(0, 0); got != 1 {
		t.Errorf("FloorNeighbors3x3(0,0) = %d; want 1", got)
	}
}

func TestString(t *testing.T) {
	m := New(3, 2)
	m.Set(1, 0, TileFloor)
	want := "#.#\n###\n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
	if r.Width() != 5 || r.Height() != 5 {
		t.Errorf("size = %dx%d; want 5x5", r.Width(), r.Height())
	}
}

func TestRectContains(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	if !a.Contains(4, 0) || a.Contains(5, 0) {
		t.Error("Contains should include edges only")
	}
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{1, 2}, Point{4, 6}, 7},
		{Point{5, 1}, Point{2, 3}, 5},
	}
	for _, c := range cases {
		if got := c.a.Manhattan(c.b); got != c.want {
			t.Errorf("%v.Manhattan(%v) = %d; want %d", c.a, c.b, got, c.want)
		}
	}
}
