package ps

import (
	"strings"
	"testing"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/vertex"
)

func TestRender(t *testing.T) {
	vertices := []vertex.Vertex{
		vertex.New("a", 100, 30, 10, false),
		vertex.New("note", 20, 20, 10, true),
	}
	sheet := vertex.Sheet{GraphWidth: 200, GraphHeight: 100, Width: 100, Height: 100}

	out, err := Render(vertices, sheet, WithTitle("test"))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"%!PS-Adobe-3.0\n",
		"%%Title: test\n",
		"%%BoundingBox: 0 0 100 100\n",
		"/Courier-Bold findfont 12 scalefont setfont\n",
		"50 70 5 0 360 arc\n",
		"(a) show\n",
		"(note) show\n",
		"showpage\n%%EOF\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	if n := strings.Count(doc, " arc\n"); n != 1 {
		t.Errorf("arc count = %d, want 1 (label-only vertex has no marker)", n)
	}
	if strings.LastIndex(doc, " arc\n") > strings.Index(doc, " moveto\n") {
		t.Error("markers should be written before labels")
	}
}

func TestRenderOptions(t *testing.T) {
	sheet := vertex.Sheet{GraphWidth: 10, GraphHeight: 10, Width: 10, Height: 10}
	out, err := Render(nil, sheet, WithFont("Helvetica-Bold"), WithFontSize(20))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(string(out), "/Helvetica-Bold findfont 20 scalefont setfont") {
		t.Errorf("font setup missing:\n%s", out)
	}
}

func TestRenderTitleStaysOnOneLine(t *testing.T) {
	sheet := vertex.Sheet{GraphWidth: 10, GraphHeight: 10, Width: 10, Height: 10}
	out, err := Render(nil, sheet, WithTitle("roads\n%%EOF\r\nshowpage"))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "%%Title: roads %%EOF  showpage\n") {
		t.Errorf("title not flattened:\n%s", doc)
	}
	if n := strings.Count(doc, "\n%%EOF"); n != 1 {
		t.Errorf("%%%%EOF lines = %d, want 1", n)
	}
}

func TestRenderInvalid(t *testing.T) {
	tests := []struct {
		name  string
		sheet vertex.Sheet
		opts  []Option
		code  errors.Code
	}{
		{"zero graph", vertex.Sheet{GraphWidth: 0, GraphHeight: 10, Width: 10, Height: 10}, nil, errors.ErrCodeInvalidDimensions},
		{"zero sheet", vertex.Sheet{GraphWidth: 10, GraphHeight: 10, Width: 10, Height: 0}, nil, errors.ErrCodeInvalidDimensions},
		{"font size", vertex.Sheet{GraphWidth: 10, GraphHeight: 10, Width: 10, Height: 10}, []Option{WithFontSize(0)}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(nil, tt.sheet, tt.opts...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
