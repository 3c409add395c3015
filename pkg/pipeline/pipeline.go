// Package pipeline turns a scene into rendered artifacts.
//
// The CLI and the preview server both render through a [Runner], which owns
// the artifact cache and logger. A run resolves the scene's vertices and
// sheet, then produces one artifact per requested format:
//
//   - ps: PostScript sheet, projected and y-flipped onto the page
//   - pdf: the PostScript sheet converted with ps2pdf
//   - svg: vertices in graph coordinates
//   - png: the raster backend in graph coordinates
//   - dot: a neato graph with pinned vertex positions
//   - neato: the dot graph laid out by Graphviz as SVG
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Render(ctx, s, pipeline.Options{
//	    Formats: []string{"ps", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ps := result.Artifacts["ps"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/render/ps"
	"github.com/matzehuels/geograph/pkg/scene"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSheetWidth and DefaultSheetHeight are A4 portrait in points.
	DefaultSheetWidth  = 595
	DefaultSheetHeight = 842

	// DefaultPNGScale is the raster scale factor.
	DefaultPNGScale = 2.0

	// DefaultFontSize is the PostScript label size in points.
	DefaultFontSize = ps.DefaultFontSize
)

// Format constants for output formats.
const (
	FormatPS  = "ps"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatDOT = "dot"

	// FormatNeato is SVG produced by Graphviz from the DOT output.
	FormatNeato = "neato"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatPS, FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatNeato}

// Extension returns the file extension written for format.
func Extension(format string) string {
	if format == FormatNeato {
		return "neato.svg"
	}
	return format
}

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatPS

// =============================================================================
// Options
// =============================================================================

// Options configures a render run.
type Options struct {
	Formats  []string   `json:"formats,omitempty"`
	Sheet    scene.Size `json:"sheet"`
	PNGScale float64    `json:"png_scale,omitempty"`
	FontSize int        `json:"font_size,omitempty"`

	// HitBoxes outlines hit squares at this multiplier in SVG output; 0 draws none.
	HitBoxes int `json:"hit_boxes,omitempty"`

	// Refresh skips cache lookups but still stores fresh artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills zero fields with defaults.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Sheet.Width == 0 {
		o.Sheet.Width = DefaultSheetWidth
	}
	if o.Sheet.Height == 0 {
		o.Sheet.Height = DefaultSheetHeight
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks formats and sizes. Call SetDefaults first.
func (o *Options) Validate() error {
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	if o.Sheet.Width <= 0 || o.Sheet.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "sheet size must be positive, got %dx%d", o.Sheet.Width, o.Sheet.Height)
	}
	if o.PNGScale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %g", o.PNGScale)
	}
	if o.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %d", o.FontSize)
	}
	if o.HitBoxes < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "hit box multiplier must not be negative, got %d", o.HitBoxes)
	}
	return nil
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:      format,
		SheetWidth:  o.Sheet.Width,
		SheetHeight: o.Sheet.Height,
	}
	switch format {
	case FormatPNG:
		opts.Scale = o.PNGScale
	case FormatPS, FormatPDF:
		opts.FontSize = o.FontSize
	case FormatSVG:
		opts.HitBoxes = o.HitBoxes
	}
	return opts
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a render run.
type Result struct {
	// Vertices are the scene's vertices in order.
	Vertices []vertex.Vertex

	// Sheet is the resolved page and graph geometry.
	Sheet vertex.Sheet

	// SceneHash identifies the resolved scene content.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains run statistics.
type Stats struct {
	VertexCount int
	RenderTime  time.Duration
}

// CacheInfo records which formats were served from the cache.
type CacheInfo struct {
	Hits map[string]bool
}

// AllHit reports whether every artifact came from the cache.
func (c CacheInfo) AllHit() bool {
	if len(c.Hits) == 0 {
		return false
	}
	for _, hit := range c.Hits {
		if !hit {
			return false
		}
	}
	return true
}
