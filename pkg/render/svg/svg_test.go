package svg

import (
	"strings"
	"testing"

	"github.com/matzehuels/geograph/pkg/vertex"
)

func TestRender(t *testing.T) {
	vertices := []vertex.Vertex{
		vertex.New("a", 100, 100, 10, false),
		vertex.New("<b&c>", 20, 30, 6, true),
	}

	doc := string(Render(vertices, 300, 200))

	for _, want := range []string{
		`viewBox="0 0 300 200"`,
		`<circle cx="100" cy="100" r="5.0" fill="black"/>`,
		`<text x="110" y="100"`,
		`font-size="20">a</text>`,
		`&lt;b&amp;c&gt;</text>`,
		"</svg>\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
	if n := strings.Count(doc, "<circle"); n != 1 {
		t.Errorf("circle count = %d, want 1", n)
	}
}

func TestRenderSkipsDegenerate(t *testing.T) {
	doc := string(Render([]vertex.Vertex{vertex.New("", 5, 5, 0, false)}, 10, 10))
	if strings.Contains(doc, "<circle") || strings.Contains(doc, "<text") {
		t.Errorf("degenerate vertex rendered:\n%s", doc)
	}
}

func TestRenderHitBoxes(t *testing.T) {
	m := vertex.MeasurerFunc(func(text string, size int) (int, int) { return 10 * len(text), size })
	doc := string(Render([]vertex.Vertex{vertex.New("a", 50, 50, 10, false)}, 100, 100,
		WithBackground("white"), WithHitBoxes(2, m)))

	if !strings.Contains(doc, `<rect x="40" y="40" width="20" height="20"`) {
		t.Errorf("hit box missing:\n%s", doc)
	}
	if !strings.Contains(doc, `<rect x="60" y="50" width="12" height="22"`) {
		t.Errorf("label bounds missing:\n%s", doc)
	}
	if !strings.Contains(doc, `fill="white"`) {
		t.Errorf("background missing:\n%s", doc)
	}
}
