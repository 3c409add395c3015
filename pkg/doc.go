// Package pkg provides the libraries behind geograph.
//
// # Overview
//
// Geograph models the vertices of a drawn graph: a filled circular marker at
// an integer position plus a name label whose anchor is derived from a polar
// offset or placed by hand. The libraries turn lists of vertices into printed
// sheets and previews.
//
// # Architecture
//
//	scene file (.toml / .yaml / .json)
//	         ↓
//	    [scene] (vertex specs → vertices, sheet geometry)
//	         ↓
//	    [pipeline] (cached render per format)
//	         ↓
//	    [render/ps] [render/svg] [render/raster] [render/nodelink]
//	         ↓
//	    PostScript / PDF / SVG / PNG / DOT
//
// # Main Packages
//
// [vertex] - The vertex entity: geometry, hit-testing, label anchors,
// PostScript fragments and the spreadsheet-style [vertex.IndexToLabel].
//
// [scene] - Scene files and their conversion to vertices.
//
// [render/ps] - Full PostScript sheets assembled from vertex fragments.
//
// [render/raster] - PNG output through fogleman/gg; also the font [vertex.Measurer].
//
// [render/svg] - SVG output in graph coordinates.
//
// [render/nodelink] - Graphviz DOT with pinned positions, and SVG rendered from it.
//
// [render] - External conversions (PostScript to PDF, SVG to PNG/PDF).
//
// [cache] - Artifact caching (file, Redis, none).
//
// [pipeline] - Scene → artifacts with caching, shared by the CLI and preview server.
//
// [errors] - Structured error codes.
//
// [observability] - Hooks for render, cache and server metrics.
//
// # Quick Start
//
//	a := vertex.New("a", 100, 100, 10, false)
//	b := vertex.New("", 300, 200, 10, false).WithName(vertex.IndexToLabel(1))
//
//	sheet := vertex.Sheet{GraphWidth: 400, GraphHeight: 300, Width: 595, Height: 842}
//	doc, err := ps.Render([]vertex.Vertex{a, b}, sheet)
//
// [vertex]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/vertex
// [scene]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/scene
// [render/ps]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/render/ps
// [render/raster]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/render/raster
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/render/svg
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/geograph/pkg/observability
package pkg
