// Package httpapi exposes the catalog, form store, exporter and suggestion
// adapter over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexanderramin/hoikuplan/internal/catalog"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/service"
)

const defaultMaxBodyBytes = 1 << 20

// Server wires the HTTP handlers to the application services.
type Server struct {
	catalog     *catalog.Catalog
	forms       service.FormService
	exports     service.ExportService
	suggestions intelligence.SuggestionService

	logger       *log.Logger
	maxBodyBytes int64
	shutdownWait time.Duration
}

// Option customizes server construction.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

func NewServer(
	cat *catalog.Catalog,
	forms service.FormService,
	exports service.ExportService,
	suggestions intelligence.SuggestionService,
	opts ...Option,
) *Server {
	s := &Server{
		catalog:      cat,
		forms:        forms,
		exports:      exports,
		suggestions:  suggestions,
		logger:       log.New(io.Discard),
		maxBodyBytes: defaultMaxBodyBytes,
		shutdownWait: 5 * time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleAgeGroups)
		r.Get("/catalog/{age}", s.handleLabels)
		r.Get("/catalog/{age}/{label}", s.handleOptions)

		r.Get("/forms/{user}/{doc}", s.handleLoadForm)
		r.Put("/forms/{user}/{doc}", s.handleSaveForm)
		r.Get("/forms/{user}/{doc}/history", s.handleHistory)

		r.Post("/render", s.handleRender)
		r.Post("/suggest", s.handleSuggest)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

// ListenAndServe serves until ctx is canceled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(listener)
	}()
	s.logger.Info("listening", "addr", listener.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownWait)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
