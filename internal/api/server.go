// Package api serves the weather card over HTTP.
package api

import (
	"context"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/weathercard/internal/card"
	"github.com/lox/weathercard/internal/imagegen"
	"github.com/lox/weathercard/internal/theme"
)

// BannerGenerator renders a banner image for a theme.
type BannerGenerator interface {
	Generate(ctx context.Context, tag theme.Tag, mode theme.Mode) ([]byte, error)
}

// SchemaVersioner reports the applied preference-store migration.
type SchemaVersioner interface {
	MigrationVersion() (int, error)
}

type Server struct {
	widget      *card.Widget
	port        string
	tmpl        *template.Template
	bannerCache *imagegen.Cache
	bannerGen   BannerGenerator // nil when image generation is disabled
	genMu       sync.Mutex      // one banner generation at a time
	schema      SchemaVersioner // nil without a database
}

// NewServer creates a server for widget. bannerGen may be nil.
func NewServer(widget *card.Widget, port string, bannerCache *imagegen.Cache, bannerGen BannerGenerator) *Server {
	return &Server{
		widget:      widget,
		port:        port,
		tmpl:        newTemplates(),
		bannerCache: bannerCache,
		bannerGen:   bannerGen,
	}
}

// SetSchema reports sv's migration version on /health.
func (s *Server) SetSchema(sv SchemaVersioner) {
	s.schema = sv
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/search", s.handleSearch)
	r.Post("/dark", s.handleDark)
	r.Get("/card.png", s.handleShareCard)
	r.Get("/banner", s.handleBanner)
	r.Get("/banner/{tag}", s.handleBanner)
	r.Get("/health", s.handleHealth)
	r.Get("/api/card", s.handleAPICard)
	r.Get("/api/weather", s.handleAPIWeather)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
