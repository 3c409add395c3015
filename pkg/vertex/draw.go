package vertex

import "image"

// Surface receives raster drawing commands.
type Surface interface {
	// FillCircle fills a circle of the given diameter centered at center.
	FillCircle(center image.Point, diameter int)
	// DrawText draws text with its baseline origin at at, in a bold
	// fixed-width font of the given size.
	DrawText(text string, at image.Point, size int)
}

// Draw renders v on s: the marker circle unless v is label-only, then the
// name at the anchor.
func (v Vertex) Draw(s Surface) {
	if !v.labelOnly {
		s.FillCircle(v.pos, v.diameter)
	}
	s.DrawText(v.name, v.anchor.Pos, v.FontSize())
}
