package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/geograph/pkg/vertex"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// VertexListModel - read-only vertex browser
// =============================================================================

// VertexListModel is the bubbletea model behind inspect --interactive.
// Enter toggles a detail pane with the vertex summary, its anchor and the
// PostScript it exports to.
type VertexListModel struct {
	Vertices   []vertex.Vertex
	Sheet      vertex.Sheet
	Multiplier int
	Cursor     int
	Offset     int
	Height     int
	Detail     bool
}

// NewVertexListModel creates a browser over vs.
func NewVertexListModel(vs []vertex.Vertex, sheet vertex.Sheet, multiplier int) VertexListModel {
	return VertexListModel{
		Vertices:   vs,
		Sheet:      sheet,
		Multiplier: multiplier,
		Height:     15,
	}
}

func (m VertexListModel) Init() tea.Cmd {
	return nil
}

func (m VertexListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Vertices)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Vertices) > 0 {
				m.Detail = !m.Detail
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 5)
	}
	return m, nil
}

func (m VertexListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Vertices"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Vertices) == 0 {
		b.WriteString(listDimStyle.Render("  (empty scene)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Vertices))
	for i := m.Offset; i < end; i++ {
		v := m.Vertices[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		name := v.Name()
		if name == "" {
			name = "—"
		}
		line := fmt.Sprintf("%s%-4d %-12s %-7s %4d,%-4d", cursor, i, name, vertexKind(v), v.X(), v.Y())

		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case v.LabelOnly():
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Vertices))))
	b.WriteString("\n")

	if m.Detail {
		b.WriteString(detailBoxStyle.Render(m.detail(m.Vertices[m.Cursor])))
		b.WriteString("\n")
	}
	return b.String()
}

// detail renders the detail pane for v.
func (m VertexListModel) detail(v vertex.Vertex) string {
	var b strings.Builder
	fprintKeyValue(&b, "Summary", v.String())
	anchor := formatAnchor(v.Anchor())
	if v.Anchor().Manual() {
		anchor = StyleWarning.Render(anchor)
	}
	fprintKeyValue(&b, "Anchor", anchor)
	fprintKeyValue(&b, "Polar", fmt.Sprintf("%d° at distance %d", v.NameAngle(), v.NameDistance()))
	if !v.LabelOnly() {
		fprintKeyValue(&b, "Hit box", formatRect(v.HitCircle(m.Multiplier)))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("PostScript"))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(v.MarkerPS(m.Sheet)+v.LabelPS(m.Sheet), "\n"))
	return b.String()
}
