package api

import (
	"github.com/lox/weathercard/internal/card"
	"github.com/lox/weathercard/internal/theme"
	"github.com/lox/weathercard/internal/weather"
)

// PageData is everything the card page template needs.
type PageData struct {
	card.Snapshot
	Palette    theme.Palette
	Particles  []theme.Particle
	QuickPicks []string
	BannerURL  string
}

func (s *Server) pageData(snap card.Snapshot) PageData {
	data := PageData{
		Snapshot:   snap,
		Palette:    snap.Palette(),
		Particles:  theme.Animation(snap.Theme),
		QuickPicks: card.QuickPicks,
	}
	if s.bannerGen != nil || s.hasCachedBanner(snap.Theme, snap.Mode()) {
		data.BannerURL = "/banner"
	}
	return data
}

// CardResponse is the JSON shape of the card state.
type CardResponse struct {
	Status  card.Status        `json:"status"`
	City    string             `json:"city,omitempty"`
	Theme   theme.Tag          `json:"theme"`
	Mode    theme.Mode         `json:"mode"`
	Error   string             `json:"error,omitempty"`
	Weather *weather.ViewModel `json:"weather,omitempty"`
	IconURL string             `json:"icon_url,omitempty"`
}

func cardResponse(snap card.Snapshot) CardResponse {
	resp := CardResponse{
		Status:  snap.Status,
		City:    snap.City,
		Theme:   snap.Theme,
		Mode:    snap.Mode(),
		Error:   snap.Error,
		Weather: snap.Weather,
	}
	if snap.Weather != nil {
		resp.IconURL = snap.Weather.IconURL()
	}
	return resp
}

// HealthStatus is returned by /health.
type HealthStatus struct {
	Status         string   `json:"status"`
	HasKey         bool     `json:"has_key"`
	BannersEnabled bool     `json:"banners_enabled"`
	CachedBanners  []string `json:"cached_banners"`
	SchemaVersion  *int     `json:"schema_version,omitempty"`
}
