package cli

import (
	"fmt"
	"image"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/render/raster"
	"github.com/matzehuels/geograph/pkg/scene"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		multiplier  int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <scene>",
		Short: "Show vertex geometry: anchors, hit boxes and label bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if multiplier < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "multiplier must not be negative")
			}
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			vs, err := s.Build()
			if err != nil {
				return err
			}

			if interactive {
				sheet := s.ResolveSheet(vs, scene.Size{Width: c.Config.Sheet.Width, Height: c.Config.Sheet.Height}, raster.Measurer{})
				_, err := tea.NewProgram(NewVertexListModel(vs, sheet, multiplier), tea.WithAltScreen()).Run()
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderVertexTable(vs, multiplier, raster.Measurer{}))
			c.Logger.Debug("inspected scene", "path", args[0], "vertices", len(vs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&multiplier, "multiplier", "m", 1, "hit box size as a multiple of the diameter")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse vertices interactively")

	return cmd
}

// vertexKind names how a vertex is drawn.
func vertexKind(v vertex.Vertex) string {
	if v.LabelOnly() {
		return "label"
	}
	return "marker"
}

// formatAnchor renders an anchor with its mode.
func formatAnchor(a vertex.Anchor) string {
	return fmt.Sprintf("%d,%d %s", a.Pos.X, a.Pos.Y, a.Mode)
}

// formatRect renders a rectangle as "x0,y0 WxH".
func formatRect(r image.Rectangle) string {
	return fmt.Sprintf("%d,%d %dx%d", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// vertexRows builds one table row per vertex.
func vertexRows(vs []vertex.Vertex, multiplier int, m vertex.Measurer) [][]string {
	rows := make([][]string, len(vs))
	for i, v := range vs {
		hit := "-"
		if !v.LabelOnly() {
			hit = formatRect(v.HitCircle(multiplier))
		}
		rows[i] = []string{
			strconv.Itoa(i),
			v.Name(),
			vertexKind(v),
			fmt.Sprintf("%d,%d", v.X(), v.Y()),
			strconv.Itoa(v.Diameter()),
			formatAnchor(v.Anchor()),
			hit,
			formatRect(v.LabelBounds(m)),
		}
	}
	return rows
}

// renderVertexTable renders the inspect table.
func renderVertexTable(vs []vertex.Vertex, multiplier int, m vertex.Measurer) string {
	rows := vertexRows(vs, multiplier, m)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Name", "Kind", "Position", "Diameter", "Anchor", "Hit box", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case col == 5 && vs[row].Anchor().Manual():
				return base.Inherit(StyleWarning)
			case col == 0 || col == 4:
				return base.Inherit(StyleNumber)
			case col == 2 && vs[row].LabelOnly():
				return base.Inherit(StyleDim)
			}
			return base
		})
	return t.Render()
}
