package api

import (
	"net/http"

	"github.com/goccy/go-json"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleAPICard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cardResponse(s.widget.Snapshot()))
}

// handleAPIWeather runs a search and reports the resulting card state. Lookup
// failures are reported in the body with a 200; only a missing city is a 400.
func (s *Server) handleAPIWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	snap := s.widget.Search(r.Context(), city)

	status := http.StatusOK
	if snap.City == "" {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, cardResponse(snap))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:         "ok",
		HasKey:         s.widget.Snapshot().HasKey,
		BannersEnabled: s.bannerGen != nil,
		CachedBanners:  []string{},
	}
	if s.bannerCache != nil {
		if keys := s.bannerCache.List(); keys != nil {
			health.CachedBanners = keys
		}
	}
	if s.schema != nil {
		version, err := s.schema.MigrationVersion()
		if err != nil {
			health.Status = "error"
			writeJSON(w, http.StatusInternalServerError, health)
			return
		}
		health.SchemaVersion = &version
	}
	writeJSON(w, http.StatusOK, health)
}
