// Package nodelink renders vertices through Graphviz.
//
// # Overview
//
// Each vertex becomes two pinned Graphviz nodes: a filled circle at the vertex
// position (omitted for label-only vertices) and a plaintext node at the label
// anchor. The NEATO engine keeps pinned nodes where they are, so the output
// follows the same geometry as the raster and PostScript backends.
//
// # Usage
//
//	dot := nodelink.ToDOT(vertices)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with the graphviz tools:
//
//	neato -n -Tpng scene.dot > scene.png
//
// # Coordinates
//
// Graphviz y grows upward, so y coordinates are negated. Positions are given
// in points (inputscale=72). Graphviz centers plaintext on its node, which
// differs slightly from the baseline-left anchor of the other backends.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no system Graphviz installation is needed.
package nodelink
