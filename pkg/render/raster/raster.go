// Package raster draws vertices onto an in-memory image and encodes it as PNG.
//
// [Canvas] implements [vertex.Surface] on top of a fogleman/gg context and
// [Measurer] implements [vertex.Measurer] with the same label faces, so hit
// boxes computed from the measurer match what the canvas draws.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/fonts"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// Canvas is a raster drawing surface. Markers and labels are drawn in the
// foreground color; coordinates are multiplied by the canvas scale.
//
// A Canvas owns its label faces and is not safe for concurrent use.
type Canvas struct {
	dc    *gg.Context
	scale float64
	faces map[int]font.Face
	err   error
}

// NewCanvas creates a width×height canvas (in graph units) filled with bg.
// The backing image is width*scale × height*scale pixels.
func NewCanvas(width, height int, scale float64, bg color.Color) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(math.Ceil(float64(width)*scale)), int(math.Ceil(float64(height)*scale)))
	dc.SetColor(bg)
	dc.Clear()
	dc.SetColor(color.Black)
	return &Canvas{dc: dc, scale: scale, faces: map[int]font.Face{}}
}

// FillCircle fills a circle of the given diameter. Non-positive diameters draw nothing.
func (c *Canvas) FillCircle(center image.Point, diameter int) {
	if diameter <= 0 {
		return
	}
	c.dc.DrawCircle(float64(center.X)*c.scale, float64(center.Y)*c.scale, float64(diameter)*c.scale/2)
	c.dc.Fill()
}

// DrawText draws text with its baseline at at. Non-positive sizes draw nothing.
// A face that cannot be created is recorded and reported by Err.
func (c *Canvas) DrawText(text string, at image.Point, size int) {
	px := int(math.Round(float64(size) * c.scale))
	if text == "" || px <= 0 {
		return
	}
	face, err := c.face(px)
	if err != nil {
		if c.err == nil {
			c.err = errors.Wrap(errors.ErrCodeRenderFailed, err, "load label face at %d", px)
		}
		return
	}
	c.dc.SetFontFace(face)
	c.dc.DrawString(text, float64(at.X)*c.scale, float64(at.Y)*c.scale)
}

func (c *Canvas) face(px int) (font.Face, error) {
	if f, ok := c.faces[px]; ok {
		return f, nil
	}
	f, err := fonts.NewFace(px)
	if err != nil {
		return nil, err
	}
	c.faces[px] = f
	return f, nil
}

// Close releases the canvas's label faces.
func (c *Canvas) Close() error {
	for px, f := range c.faces {
		_ = f.Close()
		delete(c.faces, px)
	}
	return nil
}

// Err returns the first error encountered while drawing.
func (c *Canvas) Err() error { return c.err }

// Image returns the canvas pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

var _ vertex.Surface = (*Canvas)(nil)

// Measurer measures label text with the faces Canvas draws with.
// It creates a face per call, so one Measurer may be shared between goroutines.
type Measurer struct{}

// Measure returns the advance width of text and the line height at size
// points, both rounded up. Sizes that cannot produce a face measure 0×0.
func (Measurer) Measure(text string, size int) (int, int) {
	if size <= 0 {
		return 0, 0
	}
	face, err := fonts.NewFace(size)
	if err != nil {
		return 0, 0
	}
	defer face.Close()
	return font.MeasureString(face, text).Ceil(), face.Metrics().Height.Ceil()
}

var _ vertex.Measurer = Measurer{}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background color.Color
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithBackground sets the fill color behind the vertices (default white).
func WithBackground(c color.Color) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG draws vertices on a width×height canvas and returns the PNG bytes.
func RenderPNG(vertices []vertex.Vertex, width, height int, opts ...PNGOption) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "canvas size must be positive, got %dx%d", width, height)
	}
	r := pngRenderer{scale: 1.0, background: color.White}
	for _, opt := range opts {
		opt(&r)
	}

	c := NewCanvas(width, height, r.scale, r.background)
	defer c.Close()
	for _, v := range vertices {
		v.Draw(c)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
