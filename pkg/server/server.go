// Package server exposes the render pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz                          liveness probe, body "ok"
//	GET  /geometries                       JSON array of geometry names
//	POST /render?geometry=iso&format=svg   body is keymap source text
//
// Rendered artifacts are returned with their content type and an X-Cache
// header of "hit" or "miss". Errors are JSON objects:
//
//	{"error": "main.map:3: unrecognized directive \"frobnicate\"", "code": "UNRECOGNIZED_DIRECTIVE"}
//
// Input errors (parse failures, unknown geometry or format, missing include)
// answer 400; everything else answers 500. Every response carries an
// X-Request-ID header.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/kbdlayout/pkg/layout/geometry"
	"github.com/matzehuels/kbdlayout/pkg/observability"
	"github.com/matzehuels/kbdlayout/pkg/pipeline"
	"github.com/matzehuels/kbdlayout/pkg/render"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

const (
	// DefaultMaxBodyBytes limits uploaded keymap sources.
	DefaultMaxBodyBytes = 1 << 20

	// RequestIDHeader carries the request ID on every response.
	RequestIDHeader = "X-Request-ID"

	// SourceName names uploaded keymaps in error messages.
	SourceName = "request"

	shutdownTimeout = 10 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets the pipeline options every request starts from
// (scale, style, label overrides, include directory).
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithMaxBodyBytes limits the request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) { s.maxBody = n }
}

// WithIncludeFS resolves includes from fsys instead of the OS file system.
func WithIncludeFS(fsys fs.FS) Option {
	return func(s *Server) { s.defaults.FS = fsys }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// Server answers render requests with a shared pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	maxBody  int64
	logger   *log.Logger
	router   chi.Router
}

// New creates a Server rendering through runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:  runner,
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = runner.Logger
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/geometries", s.handleGeometries)
	r.Post("/render", s.handleRender)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleGeometries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, geometry.Names())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				kerrors.New(kerrors.ErrCodeInvalidInput, "keymap exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, kerrors.Wrap(kerrors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	opts, err := s.requestOptions(r, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if kerrors.IsClientError(err) {
			status = http.StatusBadRequest
		} else {
			observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		}
		writeError(w, status, err)
		return
	}

	format := render.Format(opts.Formats[0])
	w.Header().Set("Content-Type", format.ContentType())
	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[string(format)])
}

// requestOptions applies query parameters over the server defaults.
func (s *Server) requestOptions(r *http.Request, body []byte) (pipeline.Options, error) {
	opts := s.defaults
	opts.Path = ""
	opts.Source = string(body)
	opts.SourceName = SourceName
	opts.Logger = s.logger

	q := r.URL.Query()
	if g := q.Get("geometry"); g != "" {
		opts.Geometry = g
	}
	format := q.Get("format")
	if format == "" {
		format = string(render.FormatSVG)
	}
	opts.Formats = []string{format}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			return opts, kerrors.New(kerrors.ErrCodeInvalidInput, "scale must be a positive number, got %q", v)
		}
		opts.Scale = scale
	}
	if q.Has("noscript") {
		opts.NoScript = true
	}
	return opts, nil
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := kerrors.GetCode(err)
	if code == "" {
		code = kerrors.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{Error: kerrors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
