// Package svg renders vertices as an SVG document.
//
// Coordinates are graph coordinates (top-left origin), so no projection is
// needed. [WithHitBoxes] outlines the areas [vertex.Vertex.Contains] accepts.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/geograph/pkg/fonts"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	background string
	hitBoxes   int
	measurer   vertex.Measurer
}

// WithBackground fills the document with a CSS color before drawing.
func WithBackground(color string) Option { return func(r *renderer) { r.background = color } }

// WithHitBoxes outlines each vertex's hit square at the given multiplier and,
// when m is non-nil, its label bounds. Useful when tuning click tolerance.
func WithHitBoxes(multiplier int, m vertex.Measurer) Option {
	return func(r *renderer) {
		r.hitBoxes = multiplier
		r.measurer = m
	}
}

// Render returns an SVG document of the given size containing vertices.
func Render(vertices []vertex.Vertex, width, height int, opts ...Option) []byte {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}

	for _, v := range vertices {
		renderVertex(&buf, v)
	}
	if r.hitBoxes > 0 {
		for _, v := range vertices {
			renderHitBoxes(&buf, v, r.hitBoxes, r.measurer)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderVertex(buf *bytes.Buffer, v vertex.Vertex) {
	if !v.LabelOnly() && v.Diameter() > 0 {
		fmt.Fprintf(buf, `  <circle cx="%d" cy="%d" r="%.1f" fill="black"/>`+"\n",
			v.X(), v.Y(), float64(v.Diameter())/2)
	}
	if v.Name() == "" || v.FontSize() <= 0 {
		return
	}
	at := v.NamePos()
	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="%s" font-weight="bold" font-size="%d">%s</text>`+"\n",
		at.X, at.Y, escapeXML(fonts.SVGFontFamily), v.FontSize(), escapeXML(v.Name()))
}

func renderHitBoxes(buf *bytes.Buffer, v vertex.Vertex, multiplier int, m vertex.Measurer) {
	if !v.LabelOnly() {
		hit := v.HitCircle(multiplier)
		writeRect(buf, hit.Min.X, hit.Min.Y, hit.Dx(), hit.Dy(), "red")
	}
	if m != nil {
		b := v.LabelBounds(m)
		writeRect(buf, b.Min.X, b.Min.Y, b.Dx(), b.Dy(), "blue")
	}
}

func writeRect(buf *bytes.Buffer, x, y, w, h int, stroke string) {
	fmt.Fprintf(buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-dasharray="2,2"/>`+"\n",
		x, y, w, h, stroke)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
