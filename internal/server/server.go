// Package server is the HTTP presentation layer: the converter page and a
// small JSON API over one shared, read-only catalog.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/mesh-intelligence/unitconv/internal/convert"
	"github.com/mesh-intelligence/unitconv/internal/format"
	"github.com/mesh-intelligence/unitconv/internal/logging"
	"github.com/mesh-intelligence/unitconv/pkg/types"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	// DefaultCategory is selected when the page is opened without one.
	DefaultCategory string
	// Formatter renders the "formatted" field of API results.
	Formatter format.Formatter
	Logger    logging.Logger
}

// Server serves the converter page and API. Handlers only read the catalog.
type Server struct {
	catalog   types.Catalog
	converter *convert.Converter
	opts      Options
	log       logging.Logger
	page      *template.Template
	handler   http.Handler
}

// New builds a Server over cat. The default category must exist.
func New(cat types.Catalog, opts Options) (*Server, error) {
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = types.DefaultCategory
	}
	if _, err := cat.Units(opts.DefaultCategory); err != nil {
		return nil, fmt.Errorf("default category: %w", err)
	}
	if opts.Formatter.Style == "" {
		opts.Formatter = format.Formatter{Style: types.StyleFixed, Precision: types.DefaultPrecision}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	s := &Server{
		catalog:   cat,
		converter: convert.New(cat),
		opts:      opts,
		log:       opts.Logger.WithComponent("server"),
		page:      page,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/categories/{category}/units", s.handleUnits)
	mux.HandleFunc("GET /api/convert", s.handleConvert)
	s.handler = s.logRequests(mux)

	return s, nil
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.log.Info(ctx, "listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	s.log.Info(ctx, "stopped")
	return nil
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		reqLog := s.log.With("method", r.Method, "path", r.URL.Path)
		reqLog.Debug(r.Context(), "request", "status", rec.status, "duration", time.Since(start))
	})
}
