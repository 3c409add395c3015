package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "ps", 3)
	r.OnRenderComplete(ctx, "ps", 512, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "png")
	c.OnCacheMiss(ctx, "svg")
	c.OnCacheSet(ctx, "ps", 1024)

	s := NoopServeHooks{}
	s.OnRequest(ctx, "GET", "/sheet.ps")
	s.OnResponse(ctx, "GET", "/sheet.ps", 200, time.Millisecond)
}

type testRenderHooks struct {
	NoopRenderHooks
	started []string
}

func (h *testRenderHooks) OnRenderStart(_ context.Context, format string, _ int) {
	h.started = append(h.started, format)
}

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Serve().(NoopServeHooks); !ok {
		t.Error("Serve() should return NoopServeHooks by default")
	}

	rh := &testRenderHooks{}
	ch := &testCacheHooks{}
	SetRenderHooks(rh)
	SetCacheHooks(ch)

	Render().OnRenderStart(context.Background(), "svg", 1)
	Cache().OnCacheHit(context.Background(), "svg")

	if len(rh.started) != 1 || rh.started[0] != "svg" {
		t.Errorf("render hooks started = %v, want [svg]", rh.started)
	}
	if ch.hits != 1 {
		t.Errorf("cache hits = %d, want 1", ch.hits)
	}

	// nil is ignored
	SetRenderHooks(nil)
	if Render() != RenderHooks(rh) {
		t.Error("SetRenderHooks(nil) should keep the registered hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}
