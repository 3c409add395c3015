// Package vertex models a single node of a 2D graph drawing: its position,
// display size, optional text label and the placement of that label.
//
// # Overview
//
// A [Vertex] is an immutable value. Every mutator is a With* method that
// returns a new Vertex, so a caller holding a Vertex never observes a label
// anchor that is stale relative to the position, diameter, angle and distance
// it was derived from. Copying a Vertex is plain assignment.
//
// The label anchor is a tagged [Anchor]: it is either derived from the vertex
// geometry by [NamePosition], or manually placed by [Vertex.WithNamePosition]
// (used when a user drags a label). Changing any derivation input returns the
// anchor to the derived state.
//
// # Label Placement
//
// The label is offset from the vertex center by
//
//	offset = 2 * nameDistance * diameter / 10
//
// in the direction of nameAngle (degrees, clockwise on a top-left origin
// screen). Both components are truncated toward zero.
//
// # Rendering
//
// A Vertex renders through two independent backends that read the same fields:
//
//   - [Vertex.Draw] issues fill-circle and draw-text commands on an injected
//     [Surface] (see the raster package for a PNG implementation).
//   - [Vertex.MarkerPS] and [Vertex.LabelPS] produce PostScript fragments for
//     a [Sheet], shrinking coordinates to fit and flipping the y axis.
//
// Label hit-testing needs glyph metrics, which come from an injected
// [Measurer] so this package carries no font dependency.
//
// # Concurrency
//
// Vertex values carry no internal synchronization and need none: they are
// never modified in place.
package vertex
