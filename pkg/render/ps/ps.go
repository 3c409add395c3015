// Package ps assembles vertex PostScript fragments into a printable sheet.
//
// The vertex package emits one marker fragment and one label fragment per
// vertex; this package wraps them in a document with a bounding box, font
// setup and showpage. Markers are written before labels so text is never
// covered by a later circle.
package ps

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/fonts"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// DefaultFontSize is the label size used when WithFontSize is not given.
const DefaultFontSize = 12

// Option configures PostScript rendering.
type Option func(*renderer)

type renderer struct {
	font     string
	fontSize int
	title    string
}

// WithFont sets the PostScript font name (default Courier-Bold).
func WithFont(name string) Option { return func(r *renderer) { r.font = name } }

// WithFontSize sets the label font size in points.
func WithFontSize(size int) Option { return func(r *renderer) { r.fontSize = size } }

// WithTitle sets the %%Title comment.
func WithTitle(title string) Option { return func(r *renderer) { r.title = title } }

// Render returns a complete PostScript document for vertices on sheet.
func Render(vertices []vertex.Vertex, sheet vertex.Sheet, opts ...Option) ([]byte, error) {
	if err := errors.ValidateSheet(sheet.GraphWidth, sheet.GraphHeight, sheet.Width, sheet.Height); err != nil {
		return nil, err
	}
	r := renderer{font: fonts.PostScriptFont, fontSize: DefaultFontSize, title: "geograph"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fontSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %d", r.fontSize)
	}

	var buf bytes.Buffer
	buf.WriteString("%!PS-Adobe-3.0\n")
	fmt.Fprintf(&buf, "%%%%Title: %s\n", commentText(r.title))
	fmt.Fprintf(&buf, "%%%%BoundingBox: 0 0 %d %d\n", sheet.Width, sheet.Height)
	buf.WriteString("%%Pages: 1\n%%EndComments\n\n")
	fmt.Fprintf(&buf, "/%s findfont %d scalefont setfont\n\n", r.font, r.fontSize)

	for _, v := range vertices {
		buf.WriteString(v.MarkerPS(sheet))
	}
	for _, v := range vertices {
		buf.WriteString(v.LabelPS(sheet))
	}

	buf.WriteString("showpage\n%%EOF\n")
	return buf.Bytes(), nil
}

// commentText replaces control characters with spaces so s stays on one
// comment line.
func commentText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
