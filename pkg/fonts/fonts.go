// Package fonts provides the label typeface shared by all renderers.
//
// Labels are drawn in a bold fixed-width face. The raster backend and the
// text measurer use the Go Mono Bold font bundled with golang.org/x/image, so
// metrics are available without any system fonts; the vector backends name
// the closest standard family instead.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// SVGFontFamily is the CSS font-family used by the SVG renderer.
const SVGFontFamily = `'Go Mono', 'Courier New', monospace`

// PostScriptFont is the standard PostScript font used by the sheet exporter.
const PostScriptFont = "Courier-Bold"

// DPI is the resolution faces are created at. At 72 DPI one point is one pixel.
const DPI = 72

var (
	parsed    *opentype.Font
	parseErr  error
	parseOnce sync.Once
)

// LabelFont returns the parsed Go Mono Bold font. The result is cached after
// first computation and may be shared between goroutines.
func LabelFont() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(gomonobold.TTF)
	})
	return parsed, parseErr
}

// NewFace returns a new label face at size points.
//
// A face reuses glyph buffers internally and must not be used by more than
// one goroutine at a time. Callers own the face and should Close it.
func NewFace(size int) (font.Face, error) {
	fnt, err := LabelFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
}
