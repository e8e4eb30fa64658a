package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weathercard_provider_calls_total",
			Help: "Total OpenWeatherMap current-weather calls",
		},
		[]string{"status"},
	)

	ProviderLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "weathercard_provider_latency_seconds",
			Help:    "OpenWeatherMap call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weathercard_searches_total",
			Help: "Card searches by outcome",
		},
		[]string{"outcome"},
	)

	ThemesApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weathercard_themes_applied_total",
			Help: "Theme tags applied to the card after a successful search",
		},
		[]string{"theme"},
	)

	BannersGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weathercard_banners_generated_total",
			Help: "Theme banner generation attempts",
		},
		[]string{"theme", "status"},
	)
)
