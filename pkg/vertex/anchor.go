package vertex

import (
	"image"
	"math"
)

// AnchorMode tells how a label anchor was placed.
type AnchorMode int

const (
	// AnchorDerived anchors are computed by NamePosition.
	AnchorDerived AnchorMode = iota
	// AnchorManual anchors were set explicitly and ignore the vertex geometry.
	AnchorManual
)

func (m AnchorMode) String() string {
	switch m {
	case AnchorDerived:
		return "derived"
	case AnchorManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Anchor is the point a vertex label is drawn at.
type Anchor struct {
	Mode AnchorMode
	Pos  image.Point
}

// Manual reports whether the anchor was placed by hand.
func (a Anchor) Manual() bool { return a.Mode == AnchorManual }

// NamePosition computes the derived label anchor for a vertex centered at pos.
//
// The offset magnitude is 2*distance*diameter/10 in integer arithmetic; each
// component of the polar offset is truncated toward zero. angle is in degrees
// and may be any integer.
func NamePosition(pos image.Point, diameter, angle, distance int) image.Point {
	offset := float64(2 * distance * diameter / 10)
	rad := float64(angle*2) * math.Pi / 360
	return image.Pt(
		pos.X+int(offset*math.Cos(rad)),
		pos.Y+int(offset*math.Sin(rad)),
	)
}
