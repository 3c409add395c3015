package vertex

import (
	"fmt"
	"image"
)

// Defaults applied by [Default] and [New].
const (
	DefaultDiameter     = 10
	DefaultNameAngle    = 0
	DefaultNameDistance = 5
)

// Vertex is a graph node with a position, a diameter and a text label.
// The zero value is a degenerate vertex at the origin with a zero diameter;
// use [Default] or [New] for a vertex with the standard label placement.
type Vertex struct {
	pos          image.Point
	diameter     int
	name         string
	anchor       Anchor
	nameAngle    int
	nameDistance int
	labelOnly    bool
}

// Default returns an unnamed vertex at (0,0) with the default diameter and
// label placement.
func Default() Vertex {
	return New("", 0, 0, DefaultDiameter, false)
}

// New returns a vertex named name at (x, y). nameAngle and nameDistance take
// their defaults and the label anchor is derived from them.
// diameter is not validated; zero and negative values are accepted.
func New(name string, x, y, diameter int, labelOnly bool) Vertex {
	v := Vertex{
		pos:          image.Pt(x, y),
		diameter:     diameter,
		name:         name,
		nameAngle:    DefaultNameAngle,
		nameDistance: DefaultNameDistance,
		labelOnly:    labelOnly,
	}
	return v.derive()
}

// derive recomputes the anchor from the current geometry.
func (v Vertex) derive() Vertex {
	v.anchor = Anchor{
		Mode: AnchorDerived,
		Pos:  NamePosition(v.pos, v.diameter, v.nameAngle, v.nameDistance),
	}
	return v
}

func (v Vertex) Position() image.Point { return v.pos }
func (v Vertex) X() int                { return v.pos.X }
func (v Vertex) Y() int                { return v.pos.Y }
func (v Vertex) Diameter() int         { return v.diameter }
func (v Vertex) Name() string          { return v.name }
func (v Vertex) NameAngle() int        { return v.nameAngle }
func (v Vertex) NameDistance() int     { return v.nameDistance }
func (v Vertex) LabelOnly() bool       { return v.labelOnly }

// Anchor returns the label anchor together with how it was placed.
func (v Vertex) Anchor() Anchor { return v.anchor }

// NamePos returns the point the label is drawn at.
func (v Vertex) NamePos() image.Point { return v.anchor.Pos }

// FontSize returns the label font size, twice the diameter.
func (v Vertex) FontSize() int { return 2 * v.diameter }

// WithPosition returns v moved to (x, y) with a freshly derived anchor.
func (v Vertex) WithPosition(x, y int) Vertex {
	v.pos = image.Pt(x, y)
	return v.derive()
}

// WithDiameter returns v resized to d with a freshly derived anchor.
// The font size follows the diameter.
func (v Vertex) WithDiameter(d int) Vertex {
	v.diameter = d
	return v.derive()
}

// WithNameAngle returns v with the label rotated to a degrees around the center.
func (v Vertex) WithNameAngle(a int) Vertex {
	v.nameAngle = a
	return v.derive()
}

// WithNameDistance returns v with the label distance factor set to d.
func (v Vertex) WithNameDistance(d int) Vertex {
	v.nameDistance = d
	return v.derive()
}

// WithName returns v relabelled. The anchor is unchanged.
func (v Vertex) WithName(name string) Vertex {
	v.name = name
	return v
}

// WithLabelOnly returns v with the circular marker suppressed (or restored).
func (v Vertex) WithLabelOnly(labelOnly bool) Vertex {
	v.labelOnly = labelOnly
	return v
}

// WithNamePosition returns v with the label pinned at (x, y). The anchor
// stays manual until one of position, diameter, angle or distance changes.
func (v Vertex) WithNamePosition(x, y int) Vertex {
	v.anchor = Anchor{Mode: AnchorManual, Pos: image.Pt(x, y)}
	return v
}

// WithDerivedAnchor returns v with a manually placed label put back at its
// derived position.
func (v Vertex) WithDerivedAnchor() Vertex {
	return v.derive()
}

// String returns "Vertex <name> at <x>x<y>", or "Label ..." for label-only vertices.
func (v Vertex) String() string {
	kind := "Vertex"
	if v.labelOnly {
		kind = "Label"
	}
	return fmt.Sprintf("%s %s at %dx%d", kind, v.name, v.pos.X, v.pos.Y)
}
