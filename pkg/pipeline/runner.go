package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/observability"
	"github.com/matzehuels/geograph/pkg/render/raster"
	"github.com/matzehuels/geograph/pkg/scene"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// Runner renders scenes with caching.
//
// The Runner keeps no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached artifacts.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Render builds the scene's vertices and renders every requested format,
// serving each from the cache when possible.
func (r *Runner) Render(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	vertices, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	sheet := s.ResolveSheet(vertices, opts.Sheet, raster.Measurer{})
	// The scene's own sheet overrides the page default for cache keys too.
	opts.Sheet = scene.Size{Width: sheet.Width, Height: sheet.Height}

	hash, err := SceneHash(s.Title, vertices, sheet)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Vertices:  vertices,
		Sheet:     sheet,
		SceneHash: hash,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheInfo: CacheInfo{Hits: make(map[string]bool, len(opts.Formats))},
	}
	result.Stats.VertexCount = len(vertices)

	start := time.Now()
	for _, format := range opts.Formats {
		data, hit, err := r.renderCached(ctx, vertices, sheet, hash, format, s.Title, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.CacheInfo.Hits[format] = hit
	}
	result.Stats.RenderTime = time.Since(start)

	opts.Logger.Info("rendered scene",
		"vertices", len(vertices),
		"formats", opts.Formats,
		"cached", result.CacheInfo.AllHit(),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderCached returns one artifact, reporting whether it came from the cache.
func (r *Runner) renderCached(ctx context.Context, vertices []vertex.Vertex, sheet vertex.Sheet, hash, format, title string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache lookup failed", "format", format, "error", err)
		}
		if err == nil && hit {
			cacheHooks.OnCacheHit(ctx, format)
			opts.Logger.Debug("cache hit", "format", format)
			return data, true, nil
		}
		cacheHooks.OnCacheMiss(ctx, format)
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, len(vertices))
	start := time.Now()
	data, err := RenderFormat(ctx, vertices, sheet, format, title, opts)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		opts.Logger.Warn("cache store failed", "format", format, "error", err)
	} else {
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}
	opts.Logger.Debug("rendered", "format", format, "bytes", len(data), "duration", time.Since(start))
	return data, false, nil
}

// SceneHash identifies the rendered content of a scene: its title, resolved
// vertices and graph size. The page size is part of the artifact key.
func SceneHash(title string, vertices []vertex.Vertex, sheet vertex.Sheet) (string, error) {
	specs := make([]scene.Spec, len(vertices))
	for i, v := range vertices {
		specs[i] = scene.FromVertex(v)
	}
	data, err := json.Marshal(struct {
		Title    string       `json:"title"`
		Graph    scene.Size   `json:"graph"`
		Vertices []scene.Spec `json:"vertices"`
	}{
		Title:    title,
		Graph:    scene.Size{Width: sheet.GraphWidth, Height: sheet.GraphHeight},
		Vertices: specs,
	})
	if err != nil {
		return "", fmt.Errorf("hash scene: %w", err)
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
