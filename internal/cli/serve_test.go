package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geograph/pkg/observability"
	"github.com/matzehuels/geograph/pkg/pipeline"
	"github.com/matzehuels/geograph/pkg/scene"
)

func newTestServer(t *testing.T) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	s, err := scene.Read(strings.NewReader(testScene), scene.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	logger := newLogger(&logs, log.InfoLevel)
	srv, err := newServer(s, pipeline.NewRunner(nil, nil, logger), pipeline.Options{}, 595, 842, logger)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts, &logs
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestServeHealthz(t *testing.T) {
	ts, logs := newTestServer(t)
	var body map[string]string
	if code := getJSON(t, ts.URL+"/healthz", &body); code != http.StatusOK {
		t.Errorf("status = %d, want 200", code)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
	if !strings.Contains(logs.String(), "/healthz") {
		t.Errorf("request not logged: %q", logs.String())
	}
}

func TestServeVertices(t *testing.T) {
	ts, _ := newTestServer(t)

	var list []vertexView
	if code := getJSON(t, ts.URL+"/vertices", &list); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[1].Name != "B" || list[1].Anchor.Mode != "manual" {
		t.Errorf("vertex 1 = %+v", list[1])
	}
	if list[0].Summary != "Vertex a at 100x100" {
		t.Errorf("summary = %q", list[0].Summary)
	}

	var one vertexView
	if code := getJSON(t, ts.URL+"/vertices/2", &one); code != http.StatusOK || one.Name != "note" || !one.LabelOnly {
		t.Errorf("GET /vertices/2 = %d %+v", code, one)
	}
}

func TestServeVertexErrors(t *testing.T) {
	ts, _ := newTestServer(t)
	tests := []struct {
		path string
		want int
	}{
		{"/vertices/3", http.StatusNotFound},
		{"/vertices/-1", http.StatusNotFound},
		{"/vertices/abc", http.StatusBadRequest},
		{"/hit?x=1", http.StatusBadRequest},
		{"/hit?x=0&y=0", http.StatusNotFound},
		{"/sheet.gif", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if code := getJSON(t, ts.URL+tt.path, nil); code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, code, tt.want)
		}
	}
}

func TestServeHitTest(t *testing.T) {
	ts, _ := newTestServer(t)

	var v vertexView
	if code := getJSON(t, ts.URL+"/hit?x=102&y=98", &v); code != http.StatusOK || v.Name != "a" {
		t.Errorf("hit on marker = %d %+v, want a", code, v)
	}
	// Just outside the marker, but inside a doubled hit box.
	if code := getJSON(t, ts.URL+"/hit?x=93&y=93", nil); code != http.StatusNotFound {
		t.Errorf("hit outside marker = %d, want 404", code)
	}
	if code := getJSON(t, ts.URL+"/hit?x=93&y=93&multiplier=2", &v); code != http.StatusOK || v.Name != "a" {
		t.Errorf("hit with multiplier = %d %+v, want a", code, v)
	}
}

func TestServeConcurrentRequests(t *testing.T) {
	ts, _ := newTestServer(t)

	paths := []string{
		"/hit?x=102&y=98",
		"/hit?x=112&y=105",
		"/sheet.png",
		"/sheet.svg?hitboxes=2",
	}
	var wg sync.WaitGroup
	for range 4 {
		for _, path := range paths {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp, err := http.Get(ts.URL + path)
				if err != nil {
					t.Errorf("GET %s: %v", path, err)
					return
				}
				resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
				}
			}()
		}
	}
	wg.Wait()
}

func TestServeSheet(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		format, contentType, prefix string
	}{
		{"ps", "application/postscript", "%!PS-Adobe-3.0"},
		{"svg", "image/svg+xml", "<svg"},
		{"dot", "text/vnd.graphviz; charset=utf-8", "graph G"},
	}
	for _, tt := range tests {
		resp, err := http.Get(ts.URL + "/sheet." + tt.format)
		if err != nil {
			t.Fatal(err)
		}
		var body bytes.Buffer
		_, _ = body.ReadFrom(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET /sheet.%s = %d: %s", tt.format, resp.StatusCode, body.String())
			continue
		}
		if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
			t.Errorf("GET /sheet.%s Content-Type = %q, want %q", tt.format, ct, tt.contentType)
		}
		if !strings.HasPrefix(body.String(), tt.prefix) {
			t.Errorf("GET /sheet.%s body starts %.20q, want %q", tt.format, body.String(), tt.prefix)
		}
	}
}

func TestServeSheetHitBoxes(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/sheet.svg?hitboxes=2")
	if err != nil {
		t.Fatal(err)
	}
	var body bytes.Buffer
	_, _ = body.ReadFrom(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body.String())
	}
	if !strings.Contains(body.String(), `stroke="red"`) {
		t.Errorf("hit boxes missing from %s", body.String())
	}

	if code := getJSON(t, ts.URL+"/sheet.svg?hitboxes=x", nil); code != http.StatusBadRequest {
		t.Errorf("bad hitboxes status = %d, want 400", code)
	}
	if code := getJSON(t, ts.URL+"/sheet.svg?hitboxes=-1", nil); code != http.StatusBadRequest {
		t.Errorf("negative hitboxes status = %d, want 400", code)
	}
}

type countingServeHooks struct {
	observability.NoopServeHooks
	statuses chan int
}

func (h *countingServeHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses <- status
}

func TestServeHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	hooks := &countingServeHooks{statuses: make(chan int, 4)}
	observability.SetServeHooks(hooks)

	ts, _ := newTestServer(t)
	getJSON(t, ts.URL+"/vertices/9", nil)

	select {
	case status := <-hooks.statuses:
		if status != http.StatusNotFound {
			t.Errorf("hook status = %d, want 404", status)
		}
	case <-time.After(time.Second):
		t.Error("OnResponse not called")
	}
}
