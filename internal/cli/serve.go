package cli

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/httputil"
	"github.com/matzehuels/geograph/pkg/observability"
	"github.com/matzehuels/geograph/pkg/pipeline"
	"github.com/matzehuels/geograph/pkg/render/raster"
	"github.com/matzehuels/geograph/pkg/scene"
	"github.com/matzehuels/geograph/pkg/vertex"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve <scene>",
		Short: "Preview a scene over HTTP",
		Long: `Serve a scene's vertices as JSON and its renders on demand.

Routes:
  GET /healthz
  GET /vertices
  GET /vertices/{index}
  GET /hit?x=&y=[&multiplier=]
  GET /sheet.{format}[?hitboxes=]  (ps, pdf, svg, png, dot, neato)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), args[0], addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe serves the scene until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, path, addr string, noCache bool) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv, err := newServer(s, runner, c.renderDefaults(), c.Config.Sheet.Width, c.Config.Sheet.Height, c.Logger)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	printSuccess("Serving %s", path)
	printDetail("http://%s/sheet.svg", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Logger.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// server holds one loaded scene and renders it on request.
type server struct {
	scene    *scene.Scene
	vertices []vertex.Vertex
	runner   *pipeline.Runner
	opts     pipeline.Options
	logger   *log.Logger
	measurer vertex.Measurer
}

func newServer(s *scene.Scene, runner *pipeline.Runner, opts pipeline.Options, sheetWidth, sheetHeight int, logger *log.Logger) (*server, error) {
	vs, err := s.Build()
	if err != nil {
		return nil, err
	}
	opts.Sheet = scene.Size{Width: sheetWidth, Height: sheetHeight}
	return &server{
		scene:    s,
		vertices: vs,
		runner:   runner,
		opts:     opts,
		logger:   logger,
		measurer: raster.Measurer{},
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/vertices", s.listVertices)
	r.Get("/vertices/{index}", s.getVertex)
	r.Get("/hit", s.hitTest)
	r.Get("/sheet.{format}", s.renderSheet)
	return r
}

// logRequests logs each request with its status and duration, fires the
// serve hooks and attaches a request-scoped logger to the context.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.Serve()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		reqLogger := s.logger.With("method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), reqLogger)))

		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		reqLogger.Info("request", "status", ww.Status(), "bytes", ww.BytesWritten(), "duration", elapsed.Round(time.Microsecond))
	})
}

// vertexView is the JSON form of a vertex.
type vertexView struct {
	Index     int        `json:"index"`
	Name      string     `json:"name"`
	X         int        `json:"x"`
	Y         int        `json:"y"`
	Diameter  int        `json:"diameter"`
	LabelOnly bool       `json:"label_only"`
	Anchor    anchorView `json:"anchor"`
	Summary   string     `json:"summary"`
}

type anchorView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Mode string `json:"mode"`
}

func newVertexView(i int, v vertex.Vertex) vertexView {
	a := v.Anchor()
	return vertexView{
		Index:     i,
		Name:      v.Name(),
		X:         v.X(),
		Y:         v.Y(),
		Diameter:  v.Diameter(),
		LabelOnly: v.LabelOnly(),
		Anchor:    anchorView{X: a.Pos.X, Y: a.Pos.Y, Mode: a.Mode.String()},
		Summary:   v.String(),
	}
}

func (s *server) listVertices(w http.ResponseWriter, _ *http.Request) {
	views := make([]vertexView, len(s.vertices))
	for i, v := range s.vertices {
		views[i] = newVertexView(i, v)
	}
	httputil.JSON(w, http.StatusOK, views)
}

func (s *server) getVertex(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	i, err := strconv.Atoi(raw)
	if err != nil {
		httputil.Error(w, errors.New(errors.ErrCodeInvalidInput, "invalid vertex index %q", raw))
		return
	}
	if i < 0 || i >= len(s.vertices) {
		httputil.Error(w, errors.New(errors.ErrCodeNotFound, "vertex %d not found", i))
		return
	}
	httputil.JSON(w, http.StatusOK, newVertexView(i, s.vertices[i]))
}

// hitTest returns the last vertex (topmost when drawn in order) whose marker
// or label contains the query point.
func (s *server) hitTest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, errX := strconv.Atoi(q.Get("x"))
	y, errY := strconv.Atoi(q.Get("y"))
	if errX != nil || errY != nil {
		httputil.Error(w, errors.New(errors.ErrCodeInvalidInput, "x and y must be integers"))
		return
	}
	multiplier := 1
	if m := q.Get("multiplier"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 0 {
			httputil.Error(w, errors.New(errors.ErrCodeInvalidInput, "invalid multiplier %q", m))
			return
		}
		multiplier = n
	}

	p := image.Pt(x, y)
	for i := len(s.vertices) - 1; i >= 0; i-- {
		if s.vertices[i].Contains(p, multiplier, s.measurer) {
			httputil.JSON(w, http.StatusOK, newVertexView(i, s.vertices[i]))
			return
		}
	}
	httputil.Error(w, errors.New(errors.ErrCodeNotFound, "no vertex at %d,%d", x, y))
}

func (s *server) renderSheet(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts := s.opts
	opts.Formats = []string{format}
	opts.Logger = loggerFromContext(r.Context())
	if hb := r.URL.Query().Get("hitboxes"); hb != "" {
		n, err := strconv.Atoi(hb)
		if err != nil {
			httputil.Error(w, errors.New(errors.ErrCodeInvalidInput, "invalid hitboxes %q", hb))
			return
		}
		opts.HitBoxes = n
	}

	result, err := s.runner.Render(r.Context(), s.scene, opts)
	if err != nil {
		loggerFromContext(r.Context()).Warn("render failed", "format", format, "error", err)
		httputil.Error(w, err)
		return
	}
	w.Header().Set("X-Cache", fmt.Sprint(result.CacheInfo.AllHit()))
	httputil.Artifact(w, format, result.Artifacts[format])
}
