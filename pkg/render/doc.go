// Package render provides the output backends for vertices.
//
// # Overview
//
// Every backend reads the same vertex fields (position, diameter, name and
// label anchor), so a vertex looks the same whichever output is chosen:
//
//   - Raster PNG (in [raster] subpackage), drawn natively with fogleman/gg
//   - PostScript sheets (in [ps] subpackage), shrunk to fit the page
//   - SVG (in [svg] subpackage), optionally with hit boxes outlined
//   - Graphviz node-link output (in [nodelink] subpackage)
//
// # Format Conversion
//
// [PSToPDF] converts PostScript with ps2pdf (from ghostscript). A missing
// tool yields an UNSUPPORTED error.
//
//	sheet, err := ps.Render(vertices, s)
//	pdf, err := render.PSToPDF(ctx, sheet)
//
// [raster]: github.com/matzehuels/geograph/pkg/render/raster
// [ps]: github.com/matzehuels/geograph/pkg/render/ps
// [svg]: github.com/matzehuels/geograph/pkg/render/svg
// [nodelink]: github.com/matzehuels/geograph/pkg/render/nodelink
package render
