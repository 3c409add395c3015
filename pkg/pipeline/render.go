package pipeline

import (
	"context"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/render"
	"github.com/matzehuels/geograph/pkg/render/nodelink"
	"github.com/matzehuels/geograph/pkg/render/ps"
	"github.com/matzehuels/geograph/pkg/render/raster"
	"github.com/matzehuels/geograph/pkg/render/svg"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// RenderFormat produces a single artifact without caching.
// PostScript and PDF are laid out on the sheet; the other formats use graph
// coordinates on a canvas of the sheet's graph size.
func RenderFormat(ctx context.Context, vertices []vertex.Vertex, sheet vertex.Sheet, format, title string, opts Options) ([]byte, error) {
	switch format {
	case FormatPS:
		return ps.Render(vertices, sheet, ps.WithFontSize(opts.FontSize), ps.WithTitle(title))
	case FormatPDF:
		doc, err := ps.Render(vertices, sheet, ps.WithFontSize(opts.FontSize), ps.WithTitle(title))
		if err != nil {
			return nil, err
		}
		return render.PSToPDF(ctx, doc)
	case FormatSVG:
		var svgOpts []svg.Option
		if opts.HitBoxes > 0 {
			svgOpts = append(svgOpts, svg.WithHitBoxes(opts.HitBoxes, raster.Measurer{}))
		}
		return svg.Render(vertices, sheet.GraphWidth, sheet.GraphHeight, svgOpts...), nil
	case FormatPNG:
		return raster.RenderPNG(vertices, sheet.GraphWidth, sheet.GraphHeight, raster.WithScale(opts.PNGScale))
	case FormatDOT:
		return []byte(nodelink.ToDOT(vertices)), nil
	case FormatNeato:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(vertices))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}
