package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/pipeline"
	"github.com/matzehuels/geograph/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file (single format), base path (several), or "-" for stdout
	formats     string  // comma-separated output formats
	sheetWidth  int     // page width in points, 0 = config
	sheetHeight int     // page height in points, 0 = config
	scale       float64 // PNG scale factor, 0 = config
	fontSize    int     // PostScript font size, 0 = config
	hitBoxes    int     // SVG hit box multiplier, 0 = none
	noCache     bool    // bypass the artifact cache entirely
	refresh     bool    // re-render but store results
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Export a scene as PostScript, PDF, SVG, PNG or Graphviz",
		Long: `Render a scene file (.toml, .yaml or .json) to one or more formats.

PostScript and PDF place the scene on a sheet, shrinking it to fit when the
graph is larger than the page and flipping the y axis. SVG, PNG, DOT and
neato (Graphviz-rendered SVG) keep graph coordinates.`,
		Example: `  geograph render roads.toml
  geograph render roads.toml -f ps,pdf -o out/roads
  geograph render roads.yaml -f png --scale 4 -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): ps, pdf, svg, png, dot, neato (comma-separated)")
	cmd.Flags().IntVar(&opts.sheetWidth, "sheet-width", 0, "sheet width in points (default from config)")
	cmd.Flags().IntVar(&opts.sheetHeight, "sheet-height", 0, "sheet height in points (default from config)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default from config)")
	cmd.Flags().IntVar(&opts.fontSize, "font-size", 0, "PostScript label size in points (default from config)")
	cmd.Flags().IntVar(&opts.hitBoxes, "hit-boxes", 0, "outline hit squares at this multiplier in SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// pipelineOptions merges flags over the config defaults.
func (c *CLI) pipelineOptions(opts renderOpts) pipeline.Options {
	p := c.renderDefaults()
	p.Formats = parseFormats(opts.formats, p.Formats)
	p.Sheet = scene.Size{Width: c.Config.Sheet.Width, Height: c.Config.Sheet.Height}
	if opts.sheetWidth != 0 {
		p.Sheet.Width = opts.sheetWidth
	}
	if opts.sheetHeight != 0 {
		p.Sheet.Height = opts.sheetHeight
	}
	if opts.scale != 0 {
		p.PNGScale = opts.scale
	}
	if opts.fontSize != 0 {
		p.FontSize = opts.fontSize
	}
	p.HitBoxes = opts.hitBoxes
	p.Refresh = opts.refresh
	return p
}

// runRender loads the scene, renders every format and writes the outputs.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	s, err := scene.Load(input)
	if err != nil {
		return err
	}

	popts := c.pipelineOptions(opts)
	if opts.output == "-" && len(popts.Formats) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stdout output needs exactly one format, got %d", len(popts.Formats))
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()
	result, err := runner.Render(ctx, s, popts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	if opts.output == "-" {
		_, err := os.Stdout.Write(result.Artifacts[popts.Formats[0]])
		return err
	}

	paths := make([]string, 0, len(popts.Formats))
	for _, format := range popts.Formats {
		path := outputPath(opts.output, input, format, len(popts.Formats) > 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(paths)))
	printSuccess("Rendered %s", filepath.Base(input))
	printStats(result.Stats.VertexCount, popts.Formats, result.CacheInfo.AllHit())
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// outputPath derives the file written for one format. A single format with
// an explicit output uses it verbatim; otherwise the format is appended to
// the base path (the output without a known extension, or the input's stem).
func outputPath(output, input, format string, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	return basePath(output, input) + "." + pipeline.Extension(format)
}

// basePath strips a known output extension from output, or the extension from
// input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Backwards so ".neato.svg" is tried before ".svg".
	for i := len(pipeline.ValidFormats) - 1; i >= 0; i-- {
		if ext := "." + pipeline.Extension(pipeline.ValidFormats[i]); strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}
