package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Scroll moves the view by (dx, dy) world tiles.
func (c *Camera) Scroll(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// Clamp keeps the view from scrolling past a w×h world. Worlds smaller
// than the view are pinned to the top-left corner.
func (c *Camera) Clamp(w, h int) {
	tilesX := c.ViewWidth / 2
	c.OffsetX = max(0, min(c.OffsetX, w-tilesX))
	c.OffsetY = max(0, min(c.OffsetY, h-c.ViewHeight))
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
