// Package metrics provides Prometheus metrics for the card analyzer.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cardfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// eBay API Metrics
	EbayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardfolio_ebay_requests_total",
			Help: "Listing client calls by endpoint and data source",
		},
		[]string{"endpoint", "source"}, // endpoint: "search" or "detail", source: "live" or "mock"
	)

	EbayFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardfolio_ebay_fallbacks_total",
			Help: "Live API calls that fell back to synthetic data",
		},
		[]string{"endpoint", "reason"}, // reason: "auth", "request", "status", "decode"
	)

	EbayDetailCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_ebay_detail_cache_hits_total",
			Help: "Listing detail requests served from the in-memory cache",
		},
	)

	// OAuth Token Metrics
	TokenRefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_token_refreshes_total",
			Help: "Successful OAuth token exchanges",
		},
	)

	TokenRefreshFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_token_refresh_failures_total",
			Help: "Failed OAuth token exchanges",
		},
	)

	// Analysis Metrics
	AnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_analyses_total",
			Help: "Completed pricing analyses",
		},
	)

	AnalysisListings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cardfolio_analysis_listings",
			Help:    "Listings aggregated per analysis run",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
)
