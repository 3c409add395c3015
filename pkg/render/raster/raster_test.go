package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/vertex"
)

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x4000 && g < 0x4000 && b < 0x4000
}

func TestRenderPNG(t *testing.T) {
	vertices := []vertex.Vertex{
		vertex.New("a", 50, 50, 20, false),
		vertex.New("note", 150, 150, 10, true),
	}

	data, err := RenderPNG(vertices, 200, 200)
	if err != nil {
		t.Fatalf("RenderPNG error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(200, 200) {
		t.Errorf("size = %v, want 200x200", got)
	}
	if !isDark(img.At(50, 50)) {
		t.Errorf("pixel at marker center = %v, want black", img.At(50, 50))
	}
	if isDark(img.At(150, 150)) {
		t.Errorf("label-only vertex drew a marker at its center")
	}
	if isDark(img.At(5, 195)) {
		t.Errorf("background pixel = %v, want white", img.At(5, 195))
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG([]vertex.Vertex{vertex.New("a", 10, 10, 8, false)}, 40, 30, WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(80, 60) {
		t.Errorf("size = %v, want 80x60", got)
	}
	if !isDark(img.At(20, 20)) {
		t.Errorf("scaled marker center = %v, want black", img.At(20, 20))
	}
}

func TestRenderPNGInvalidSize(t *testing.T) {
	_, err := RenderPNG(nil, 0, 10)
	if !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidDimensions)
	}
}

func TestCanvasDegenerateVertex(t *testing.T) {
	c := NewCanvas(10, 10, 1, color.White)
	vertex.New("x", 5, 5, 0, false).Draw(c)
	vertex.New("y", 5, 5, -4, false).Draw(c)
	if err := c.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestMeasurer(t *testing.T) {
	var m Measurer

	w1, h1 := m.Measure("a", 20)
	w3, h3 := m.Measure("abc", 20)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure(a) = %dx%d, want positive", w1, h1)
	}
	if w3 <= 2*w1 {
		t.Errorf("width(abc) = %d, want more than twice width(a) = %d", w3, w1)
	}
	if h3 != h1 {
		t.Errorf("line height differs by text: %d vs %d", h3, h1)
	}

	if w, h := m.Measure("abc", 0); w != 0 || h != 0 {
		t.Errorf("Measure at size 0 = %dx%d, want 0x0", w, h)
	}
}

func TestMeasurerLabelBounds(t *testing.T) {
	v := vertex.New("abc", 100, 100, 10, false)
	r := v.LabelBounds(Measurer{})
	if r.Min != v.NamePos() {
		t.Errorf("bounds origin = %v, want %v", r.Min, v.NamePos())
	}
	if r.Dx() <= 2 || r.Dy() <= 2 {
		t.Errorf("bounds = %v, want larger than padding", r)
	}
}

func TestMeasureAndRenderConcurrently(t *testing.T) {
	vertices := []vertex.Vertex{
		vertex.New("alpha", 40, 40, 10, false),
		vertex.New("beta", 120, 80, 12, false),
	}
	want, _ := Measurer{}.Measure("alpha", 20)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 20 {
				if w, _ := (Measurer{}).Measure("alpha", 20); w != want {
					t.Errorf("Measure width = %d, want %d", w, want)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for range 5 {
				if _, err := RenderPNG(vertices, 200, 120); err != nil {
					t.Errorf("RenderPNG error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
