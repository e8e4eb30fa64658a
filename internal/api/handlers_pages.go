package api

import (
	"log"
	"net/http"
	"net/url"

	"github.com/lox/weathercard/internal/card"
)

func (s *Server) render(w http.ResponseWriter, r *http.Request, snap card.Snapshot) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", s.pageData(snap)); err != nil {
		log.Printf("template error [%s]: %v", RequestIDFrom(r.Context()), err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.widget.Snapshot())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	snap := s.widget.Search(r.Context(), r.URL.Query().Get("city"))
	s.render(w, r, snap)
}

// handleDark sets the display mode from the "dark" form value ("1" or "0"),
// or toggles it when the value is absent.
func (s *Server) handleDark(w http.ResponseWriter, r *http.Request) {
	var err error
	switch v := r.FormValue("dark"); v {
	case "1", "0":
		err = s.widget.SetDark(r.Context(), v == "1")
	case "":
		_, err = s.widget.ToggleDark(r.Context())
	default:
		http.Error(w, "dark must be 1 or 0", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("save dark mode [%s]: %v", RequestIDFrom(r.Context()), err)
	}

	back := "/"
	if city := s.widget.Snapshot().City; city != "" && r.FormValue("back") == "search" {
		back = "/search?city=" + url.QueryEscape(city)
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
