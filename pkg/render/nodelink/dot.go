package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/fonts"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// pointsPerInch converts vertex diameters to Graphviz node sizes.
const pointsPerInch = 72.0

// ToDOT converts vertices to Graphviz DOT source with pinned positions.
func ToDOT(vertices []vertex.Vertex) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=black, color=black, fixedsize=true, label=\"\"];\n")
	buf.WriteString("\n")

	for i, v := range vertices {
		id := "v" + strconv.Itoa(i)
		if !v.LabelOnly() {
			fmt.Fprintf(&buf, "  %q [pos=%q, width=%s, tooltip=%q];\n",
				id, pin(v.X(), v.Y()), inches(v.Diameter()), v.String())
		}
		if v.Name() == "" || v.FontSize() <= 0 {
			continue
		}
		at := v.NamePos()
		fmt.Fprintf(&buf, "  %q [pos=%q, shape=plaintext, style=\"\", fixedsize=false, label=%q, fontname=%q, fontsize=%d];\n",
			id+"_label", pin(at.X, at.Y), v.Name(), fonts.PostScriptFont, v.FontSize())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func pin(x, y int) string { return fmt.Sprintf("%d,%d!", x, -y) }

func inches(d int) string {
	return strconv.FormatFloat(float64(max(d, 0))/pointsPerInch, 'f', 4, 64)
}

// RenderSVG renders DOT source to SVG using Graphviz with the NEATO engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's svg tag (which carries pt units) with
// a plain pixel-sized one so the output scales like the other backends.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
