package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Browsing Metrics
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_searches_total",
		Help: "Total number of free-text catalog searches.",
	})
	AssetViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_asset_views_total",
		Help: "Total number of asset detail views.",
	})
	AssetNotFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_asset_not_found_total",
		Help: "Total number of detail lookups for ids absent from the catalog.",
	})

	// Feature Usage Metrics
	FavoriteTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_favorite_toggles_total",
		Help: "Total number of favorite toggles.",
	}, []string{"state"}) // state: "added" or "removed"
	ShareLinksBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_share_links_built_total",
		Help: "Total number of share link payloads built.",
	})
	ContactSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_contact_submissions_total",
		Help: "Total number of contact form submissions.",
	}, []string{"status"}) // status: "accepted", "rejected" or "failed"
)
