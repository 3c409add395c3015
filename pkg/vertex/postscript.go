package vertex

import (
	"fmt"
	"image"
	"strings"
)

// Sheet carries the logical size of the whole graph and the physical size of
// the output page. All four dimensions must be positive.
type Sheet struct {
	GraphWidth  int
	GraphHeight int
	Width       int
	Height      int
}

// Project maps a graph point onto the sheet. An axis is shrunk by
// Width/GraphWidth (or Height/GraphHeight) only when the graph is larger than
// the sheet along it; smaller graphs are never enlarged. The y axis is then
// flipped so the origin is bottom-left.
func (s Sheet) Project(p image.Point) image.Point {
	x, y := p.X, p.Y
	if s.GraphWidth > s.Width {
		x = x * s.Width / s.GraphWidth
	}
	if s.GraphHeight > s.Height {
		y = y * s.Height / s.GraphHeight
	}
	return image.Pt(x, s.Height-y)
}

// MarkerPS returns the PostScript for the filled marker circle, or "" for a
// label-only vertex. The radius is not scaled.
func (v Vertex) MarkerPS(s Sheet) string {
	if v.labelOnly {
		return ""
	}
	p := s.Project(v.pos)
	return fmt.Sprintf("%d %d %d 0 360 arc\n0 setgray\nfill\nstroke\n\n", p.X, p.Y, v.diameter/2)
}

// LabelPS returns the PostScript that shows the name at the projected anchor.
// It is emitted for every vertex, label-only or not.
func (v Vertex) LabelPS(s Sheet) string {
	p := s.Project(v.anchor.Pos)
	return fmt.Sprintf("%d %d moveto\n(%s) show\n\n", p.X, p.Y, psEscaper.Replace(v.name))
}

var psEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
