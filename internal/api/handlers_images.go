package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lox/weathercard/internal/imagegen"
	"github.com/lox/weathercard/internal/theme"
)

func (s *Server) hasCachedBanner(tag theme.Tag, mode theme.Mode) bool {
	if s.bannerCache == nil {
		return false
	}
	_, ok := s.bannerCache.Get(tag, mode)
	return ok
}

// handleShareCard renders the current result as a PNG.
func (s *Server) handleShareCard(w http.ResponseWriter, r *http.Request) {
	snap := s.widget.Snapshot()
	if snap.Weather == nil {
		http.Error(w, "no weather to share", http.StatusNotFound)
		return
	}

	data, err := imagegen.RenderShareCard(imagegen.ShareData{
		Location:    snap.Weather.Location(),
		Temperature: snap.Weather.Temp(),
		Description: snap.Weather.Desc(),
		Palette:     snap.Palette(),
	})
	if err != nil {
		log.Printf("render share card [%s]: %v", RequestIDFrom(r.Context()), err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	servePNG(w, data, "no-cache")
}

// handleBanner serves the banner for /banner/{tag} or, without a tag, the
// card's current theme. ?mode=dark|light overrides the display mode.
func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	snap := s.widget.Snapshot()
	tag := snap.Theme
	mode := snap.Mode()

	if raw := chi.URLParam(r, "tag"); raw != "" {
		parsed, err := theme.ParseTag(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		tag = parsed
	}
	switch r.URL.Query().Get("mode") {
	case "dark":
		mode = theme.Dark
	case "light":
		mode = theme.Light
	}

	if s.bannerCache != nil {
		if data, ok := s.bannerCache.Get(tag, mode); ok {
			servePNG(w, data, "public, max-age=3600")
			return
		}
	}
	if s.bannerGen == nil {
		http.Error(w, "banner not available", http.StatusNotFound)
		return
	}

	s.genMu.Lock()
	defer s.genMu.Unlock()

	if s.bannerCache != nil {
		if data, ok := s.bannerCache.Get(tag, mode); ok {
			servePNG(w, data, "public, max-age=3600")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Minute)
	defer cancel()

	data, err := s.bannerGen.Generate(ctx, tag, mode)
	if err != nil {
		log.Printf("banner generation failed [%s]: %v", RequestIDFrom(r.Context()), err)
		http.Error(w, "banner generation failed", http.StatusServiceUnavailable)
		return
	}
	if s.bannerCache != nil {
		if err := s.bannerCache.Set(tag, mode, data); err != nil {
			log.Printf("cache banner: %v", err)
		}
	}
	servePNG(w, data, "public, max-age=3600")
}

func servePNG(w http.ResponseWriter, data []byte, cacheControl string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", cacheControl)
	w.Write(data)
}
