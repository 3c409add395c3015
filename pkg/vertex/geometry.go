package vertex

import "image"

// labelPadding is added to both label dimensions by LabelBounds.
const labelPadding = 2

// Measurer reports glyph metrics for a font at a given size.
type Measurer interface {
	// Measure returns the advance width of text and the font's line height.
	Measure(text string, size int) (width, height int)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, size int) (width, height int)

// Measure calls f(text, size).
func (f MeasurerFunc) Measure(text string, size int) (int, int) { return f(text, size) }

// HitCircle returns the square of side diameter*multiplier centered on the
// vertex, used for pointer hit-testing. multiplier is not bounded.
func (v Vertex) HitCircle(multiplier int) image.Rectangle {
	side := v.diameter * multiplier
	origin := image.Pt(v.pos.X-side/2, v.pos.Y-side/2)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))}
}

// LabelBounds returns the rectangle covered by the label, anchored at the
// name position and measured by m at the vertex font size.
func (v Vertex) LabelBounds(m Measurer) image.Rectangle {
	w, h := m.Measure(v.name, v.FontSize())
	size := image.Pt(w+labelPadding, h+labelPadding)
	return image.Rectangle{Min: v.anchor.Pos, Max: v.anchor.Pos.Add(size)}
}

// Contains reports whether p falls on the vertex marker or its label.
// The marker test uses HitCircle(multiplier).
func (v Vertex) Contains(p image.Point, multiplier int, m Measurer) bool {
	if !v.labelOnly && p.In(v.HitCircle(multiplier)) {
		return true
	}
	return p.In(v.LabelBounds(m))
}
