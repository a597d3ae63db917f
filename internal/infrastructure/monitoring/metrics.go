// Package monitoring provides Prometheus metrics for the extraction
// service. The extraction engines never report metrics themselves; all
// observation happens at the service and HTTP boundaries.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector holds the Prometheus instruments.
type MetricsCollector struct {
	extractionsTotal    *prometheus.CounterVec
	extractionDuration  *prometheus.HistogramVec
	extractionScore     *prometheus.HistogramVec
	cacheLookupsTotal   *prometheus.CounterVec
	savedTotal          *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetricsCollector registers the extraction metrics with the default
// registry.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		extractionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extractions_total",
				Help: "Total number of extraction runs",
			},
			[]string{"type", "valid"},
		),
		extractionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "extraction_duration_seconds",
				Help:    "Extraction run duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"type"},
		),
		extractionScore: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "extraction_completeness_percent",
				Help:    "Completeness score distribution per extraction",
				Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
			[]string{"type"},
		),
		cacheLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extraction_cache_lookups_total",
				Help: "Cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		savedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extractions_saved_total",
				Help: "Total number of extractions persisted",
			},
			[]string{"type"},
		),
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordExtraction records one engine run.
func (m *MetricsCollector) RecordExtraction(contentType string, valid bool, completeness int, elapsed time.Duration) {
	m.extractionsTotal.WithLabelValues(contentType, strconv.FormatBool(valid)).Inc()
	m.extractionDuration.WithLabelValues(contentType).Observe(elapsed.Seconds())
	m.extractionScore.WithLabelValues(contentType).Observe(float64(completeness))
}

// RecordCacheLookup records a cache hit or miss.
func (m *MetricsCollector) RecordCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordSaved records one persisted extraction.
func (m *MetricsCollector) RecordSaved(contentType string) {
	m.savedTotal.WithLabelValues(contentType).Inc()
}

// RecordHTTPRequest records one handled HTTP request.
func (m *MetricsCollector) RecordHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
