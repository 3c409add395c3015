package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/geograph/internal/config"
	"github.com/matzehuels/geograph/pkg/pipeline"
)

const testScene = `
title = "roads"

[[vertex]]
name = "a"
x = 100
y = 100

[[vertex]]
auto_name = true
x = 300
y = 200
name_x = 320
name_y = 180

[[vertex]]
name = "note"
x = 50
y = 250
label_only = true
`

// setupEnv isolates config and cache directories and writes a scene file.
func setupEnv(t *testing.T) (dir, scenePath string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	scenePath = filepath.Join(dir, "roads.toml")
	if err := os.WriteFile(scenePath, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, scenePath
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseFormats(t *testing.T) {
	fallback := []string{"ps"}
	tests := []struct {
		input string
		want  string
	}{
		{"", "ps"},
		{"svg", "svg"},
		{"ps,pdf,png", "ps,pdf,png"},
		{" PNG , dot ,", "png,dot"},
	}
	for _, tt := range tests {
		got := strings.Join(parseFormats(tt.input, fallback), ",")
		if got != tt.want {
			t.Errorf("parseFormats(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input, format string
		multiple              bool
		want                  string
	}{
		{"", "scenes/roads.toml", "ps", false, "scenes/roads.ps"},
		{"out.eps", "roads.toml", "ps", false, "out.eps"},
		{"out/roads", "roads.toml", "svg", true, "out/roads.svg"},
		{"out/roads.ps", "roads.toml", "pdf", true, "out/roads.pdf"},
		{"", "roads.yaml", "png", true, "roads.png"},
		{"", "roads.toml", "neato", true, "roads.neato.svg"},
		{"out/roads.neato.svg", "roads.toml", "ps", true, "out/roads.ps"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input, tt.format, tt.multiple); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q", tt.output, tt.input, tt.format, tt.multiple, got, tt.want)
		}
	}
}

func TestPipelineOptions(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.Config = config.Default()
	c.Config.Render.Formats = []string{"svg"}

	got := c.pipelineOptions(renderOpts{sheetWidth: 300, scale: 4})
	if len(got.Formats) != 1 || got.Formats[0] != "svg" {
		t.Errorf("Formats = %v, want config [svg]", got.Formats)
	}
	if got.Sheet.Width != 300 || got.Sheet.Height != 842 {
		t.Errorf("Sheet = %v, want 300x842", got.Sheet)
	}
	if got.PNGScale != 4 {
		t.Errorf("PNGScale = %g, want 4", got.PNGScale)
	}
	if got.FontSize != pipeline.DefaultFontSize {
		t.Errorf("FontSize = %d, want %d", got.FontSize, pipeline.DefaultFontSize)
	}
}

func TestRenderCommand(t *testing.T) {
	dir, scenePath := setupEnv(t)
	base := filepath.Join(dir, "out", "roads")

	if _, err := execute(t, "render", scenePath, "-f", "ps,svg,dot", "-o", base, "--no-cache"); err != nil {
		t.Fatalf("render error: %v", err)
	}

	for _, ext := range []string{"ps", "svg", "dot"} {
		data, err := os.ReadFile(base + "." + ext)
		if err != nil {
			t.Errorf("missing %s output: %v", ext, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s output is empty", ext)
		}
	}

	ps, _ := os.ReadFile(base + ".ps")
	if !strings.Contains(string(ps), "(B) show") {
		t.Errorf("auto-named vertex missing from PostScript:\n%s", ps)
	}
}

func TestRenderCommandDefaultOutput(t *testing.T) {
	dir, scenePath := setupEnv(t)
	if _, err := execute(t, "render", scenePath); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "roads.ps")); err != nil {
		t.Errorf("default output roads.ps not written: %v", err)
	}
	entries, _ := filepath.Glob(filepath.Join(dir, "cache", "geograph", "*", "*.json"))
	if len(entries) == 0 {
		t.Error("render should populate the file cache")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	_, scenePath := setupEnv(t)

	if _, err := execute(t, "render", scenePath, "-f", "gif", "--no-cache"); err == nil {
		t.Error("unknown format should fail")
	}
	if _, err := execute(t, "render", scenePath, "-f", "ps,svg", "-o", "-"); err == nil {
		t.Error("stdout with two formats should fail")
	}
	if _, err := execute(t, "render", filepath.Join(filepath.Dir(scenePath), "missing.toml")); err == nil {
		t.Error("missing scene should fail")
	}
}

func TestConfigFlag(t *testing.T) {
	dir, scenePath := setupEnv(t)
	cfgPath := filepath.Join(dir, "custom.toml")
	content := "[render]\nformats = [\"svg\"]\n\n[cache]\nbackend = \"none\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--config", cfgPath, "render", scenePath); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "roads.svg")); err != nil {
		t.Errorf("config format not applied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cache", "geograph")); !os.IsNotExist(err) {
		t.Error("backend none should not create a cache directory")
	}
}

func TestLabelsCommand(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "labels", "3", "--start", "25", "--plain")
	if err != nil {
		t.Fatalf("labels error: %v", err)
	}
	if out != "Z\nAA\nAB\n" {
		t.Errorf("labels output = %q, want Z AA AB", out)
	}

	if _, err := execute(t, "labels", "-1"); err == nil {
		t.Error("negative count should fail")
	}
}

func TestInspectCommand(t *testing.T) {
	_, scenePath := setupEnv(t)
	out, err := execute(t, "inspect", scenePath, "--multiplier", "2")
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"Name", "note", "label", "320,180 manual", "110,100 derived", "90,90 20x20"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestCacheCommands(t *testing.T) {
	dir, scenePath := setupEnv(t)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	want := filepath.Join(dir, "cache", "geograph")
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}

	if _, err := execute(t, "render", scenePath, "-f", "ps,svg", "-o", filepath.Join(dir, "x")); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	entries, _ := filepath.Glob(filepath.Join(want, "*", "*.json"))
	if len(entries) != 0 {
		t.Errorf("cache clear left %d entries", len(entries))
	}
}

func TestCompletionCommand(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "geograph") {
		t.Error("bash completion should mention geograph")
	}
}
