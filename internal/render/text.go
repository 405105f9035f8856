package render

import (
	"bufio"
	"io"

	"emoji-caverns/internal/gamemap"
	"github.com/gookit/color"
)

var (
	ColorWall  = color.Style{color.FgGray}
	ColorFloor = color.Style{color.FgWhite}
	ColorStart = color.Style{color.FgGreen, color.OpBold}
	ColorEnemy = color.Style{color.FgRed, color.OpBold}
	ColorItem  = color.Style{color.FgYellow, color.OpBold}
)

// TextOptions controls WriteText.
type TextOptions struct {
	Color    bool
	MaxWidth int // columns; 0 writes full rows
}

// WriteText writes the scene as one character per tile: '#' wall, '.' floor,
// '@' start, 'E' enemy and '!' item.
func WriteText(w io.Writer, s Scene, opts TextOptions) error {
	marks := make(map[gamemap.Point]byte, len(s.Enemies)+len(s.Items)+1)
	for _, m := range s.Items {
		marks[m.Pos] = '!'
	}
	for _, m := range s.Enemies {
		marks[m.Pos] = 'E'
	}
	marks[s.Start] = '@'

	cols := s.Map.Width()
	if opts.MaxWidth > 0 {
		cols = min(cols, opts.MaxWidth)
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < s.Map.Height(); y++ {
		for x := 0; x < cols; x++ {
			ch, style := tileChar(s.Map, x, y)
			if m, ok := marks[gamemap.Point{X: x, Y: y}]; ok {
				ch, style = m, markStyle(m)
			}
			if opts.Color {
				bw.WriteString(style.Sprint(string(ch)))
			} else {
				bw.WriteByte(ch)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func tileChar(m *gamemap.GameMap, x, y int) (byte, color.Style) {
	if m.IsFloor(x, y) {
		return '.', ColorFloor
	}
	return '#', ColorWall
}

func markStyle(m byte) color.Style {
	switch m {
	case '@':
		return ColorStart
	case 'E':
		return ColorEnemy
	}
	return ColorItem
}
