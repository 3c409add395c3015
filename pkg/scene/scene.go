// Package scene describes a set of vertices to render and the page to render
// them on. Scenes are the input of the geograph CLI and preview server.
//
// A scene carries no topology: it is a flat list of vertex specs plus optional
// graph and sheet sizes. Scenes load from TOML, YAML or JSON:
//
//	title = "roads"
//
//	[sheet]
//	width = 595
//	height = 842
//
//	[[vertex]]
//	name = "a"
//	x = 100
//	y = 100
//
//	[[vertex]]
//	auto_name = true
//	x = 200
//	y = 140
//	name_angle = 90
package scene

import (
	"image"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// Size is a width/height pair in points.
type Size struct {
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`
}

// Scene is a renderable set of vertices.
type Scene struct {
	Title    string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Sheet    *Size  `json:"sheet,omitempty" toml:"sheet,omitempty" yaml:"sheet,omitempty"`
	Graph    *Size  `json:"graph,omitempty" toml:"graph,omitempty" yaml:"graph,omitempty"`
	Vertices []Spec `json:"vertices" toml:"vertex" yaml:"vertices"`
}

// Spec describes one vertex. Nil pointers take the vertex defaults; NameX and
// NameY, when both set, pin the label anchor.
type Spec struct {
	Name         string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	AutoName     bool   `json:"auto_name,omitempty" toml:"auto_name,omitempty" yaml:"auto_name,omitempty"`
	X            int    `json:"x" toml:"x" yaml:"x"`
	Y            int    `json:"y" toml:"y" yaml:"y"`
	Diameter     *int   `json:"diameter,omitempty" toml:"diameter,omitempty" yaml:"diameter,omitempty"`
	LabelOnly    bool   `json:"label_only,omitempty" toml:"label_only,omitempty" yaml:"label_only,omitempty"`
	NameAngle    int    `json:"name_angle,omitempty" toml:"name_angle,omitempty" yaml:"name_angle,omitempty"`
	NameDistance *int   `json:"name_distance,omitempty" toml:"name_distance,omitempty" yaml:"name_distance,omitempty"`
	NameX        *int   `json:"name_x,omitempty" toml:"name_x,omitempty" yaml:"name_x,omitempty"`
	NameY        *int   `json:"name_y,omitempty" toml:"name_y,omitempty" yaml:"name_y,omitempty"`
}

// Vertex builds the vertex described by s. index is the position of s in its
// scene and names auto-named vertices.
func (s Spec) Vertex(index int) (vertex.Vertex, error) {
	name := s.Name
	if name == "" && s.AutoName {
		name = vertex.IndexToLabel(index)
	}

	diameter := vertex.DefaultDiameter
	if s.Diameter != nil {
		diameter = *s.Diameter
	}
	distance := vertex.DefaultNameDistance
	if s.NameDistance != nil {
		distance = *s.NameDistance
	}

	v := vertex.New(name, s.X, s.Y, diameter, s.LabelOnly).
		WithNameAngle(s.NameAngle).
		WithNameDistance(distance)

	switch {
	case s.NameX != nil && s.NameY != nil:
		v = v.WithNamePosition(*s.NameX, *s.NameY)
	case s.NameX != nil || s.NameY != nil:
		return vertex.Vertex{}, errors.New(errors.ErrCodeInvalidScene, "vertex %d: name_x and name_y must be set together", index)
	}
	return v, nil
}

// FromVertex returns the spec that rebuilds v exactly, including a manually
// placed anchor.
func FromVertex(v vertex.Vertex) Spec {
	d, dist := v.Diameter(), v.NameDistance()
	s := Spec{
		Name:         v.Name(),
		X:            v.X(),
		Y:            v.Y(),
		Diameter:     &d,
		LabelOnly:    v.LabelOnly(),
		NameAngle:    v.NameAngle(),
		NameDistance: &dist,
	}
	if a := v.Anchor(); a.Manual() {
		x, y := a.Pos.X, a.Pos.Y
		s.NameX, s.NameY = &x, &y
	}
	return s
}

// New returns a scene holding vertices.
func New(title string, vertices []vertex.Vertex) *Scene {
	s := &Scene{Title: title, Vertices: make([]Spec, len(vertices))}
	for i, v := range vertices {
		s.Vertices[i] = FromVertex(v)
	}
	return s
}

// Build returns the scene's vertices in order.
func (s *Scene) Build() ([]vertex.Vertex, error) {
	out := make([]vertex.Vertex, len(s.Vertices))
	for i, spec := range s.Vertices {
		v, err := spec.Vertex(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Extent returns the smallest size, at least 1×1, covering every marker,
// label anchor and, when m is non-nil, every named label's bounds as
// measured by m.
func Extent(vertices []vertex.Vertex, m vertex.Measurer) Size {
	maxPt := image.Pt(1, 1)
	for _, v := range vertices {
		hit := v.HitCircle(1)
		maxPt.X = max(maxPt.X, hit.Max.X, v.NamePos().X)
		maxPt.Y = max(maxPt.Y, hit.Max.Y, v.NamePos().Y)
		if m != nil && v.Name() != "" {
			label := v.LabelBounds(m)
			maxPt.X = max(maxPt.X, label.Max.X)
			maxPt.Y = max(maxPt.Y, label.Max.Y)
		}
	}
	return Size{Width: maxPt.X, Height: maxPt.Y}
}

// ResolveSheet combines the scene's sizes with defaults: the sheet falls back
// to page, the graph size to the extent of vertices with labels measured by m.
func (s *Scene) ResolveSheet(vertices []vertex.Vertex, page Size, m vertex.Measurer) vertex.Sheet {
	sheet := page
	if s.Sheet != nil {
		sheet = *s.Sheet
	}
	graph := Extent(vertices, m)
	if s.Graph != nil {
		graph = *s.Graph
	}
	return vertex.Sheet{
		GraphWidth:  graph.Width,
		GraphHeight: graph.Height,
		Width:       sheet.Width,
		Height:      sheet.Height,
	}
}
