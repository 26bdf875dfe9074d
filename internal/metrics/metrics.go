// Package metrics defines the Prometheus collectors for the collection
// pipeline and exposes the scrape handler mounted by the API server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsprism_search_requests_total",
			Help: "Total number of search feed requests, labeled by result.",
		},
		[]string{"result"},
	)
	CandidatesFiltered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "newsprism_candidates_filtered_total",
			Help: "Total number of search candidates rejected by the locale filter.",
		},
	)
	CrawlAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsprism_crawl_attempts_total",
			Help: "Total number of body-extraction attempts, labeled by outcome.",
		},
		[]string{"outcome"},
	)
	CrawlDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsprism_crawl_duration_seconds",
			Help:    "Duration of body-extraction attempts in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	ArticlesCollected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsprism_articles_collected_total",
			Help: "Total number of articles kept after dedup and capping, labeled by category.",
		},
		[]string{"category"},
	)
	CollectionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsprism_collection_duration_seconds",
			Help:    "Duration of collection operations in seconds.",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"operation"},
	)
	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "newsprism_cache_hits_total",
			Help: "Total number of collection cache hits.",
		},
	)
	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "newsprism_cache_misses_total",
			Help: "Total number of collection cache misses.",
		},
	)
	WSClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsprism_ws_clients",
			Help: "Number of WebSocket clients currently connected.",
		},
	)
)

func init() {
	prometheus.MustRegister(SearchRequests)
	prometheus.MustRegister(CandidatesFiltered)
	prometheus.MustRegister(CrawlAttempts)
	prometheus.MustRegister(CrawlDuration)
	prometheus.MustRegister(ArticlesCollected)
	prometheus.MustRegister(CollectionDuration)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(WSClients)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
