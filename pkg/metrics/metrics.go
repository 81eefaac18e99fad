package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Bulk dispatch metrics
	BulkOperationsTotal   *prometheus.CounterVec
	BulkOperationDuration *prometheus.HistogramVec
	BulkItemsTotal        *prometheus.CounterVec

	// Asset sync metrics
	SyncRunsTotal       *prometheus.CounterVec
	SyncRunDuration     *prometheus.HistogramVec
	SyncEntriesUpserted *prometheus.CounterVec

	// External API metrics
	MetaAPICalls    *prometheus.CounterVec
	MetaAPIDuration *prometheus.HistogramVec

	// AI insight metrics
	AIInsightsGenerated *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		BulkOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bulk_operations_total",
				Help: "Total number of bulk operations dispatched",
			},
			[]string{"operation", "status"},
		),

		BulkOperationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bulk_operation_duration_seconds",
				Help:    "Bulk operation duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"operation"},
		),

		BulkItemsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bulk_items_total",
				Help: "Total number of entities touched by bulk operations",
			},
			[]string{"operation", "status"},
		),

		SyncRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asset_sync_runs_total",
				Help: "Total number of asset sync runs",
			},
			[]string{"status"},
		),

		SyncRunDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "asset_sync_run_duration_seconds",
				Help:    "Asset sync run duration in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"trigger"},
		),

		SyncEntriesUpserted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asset_sync_entries_upserted_total",
				Help: "Total number of ad_data rows upserted by the sync",
			},
			[]string{"account_id"},
		),

		MetaAPICalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meta_api_calls_total",
				Help: "Total number of Meta Graph API calls",
			},
			[]string{"operation", "status"},
		),

		MetaAPIDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meta_api_duration_seconds",
				Help:    "Meta Graph API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		AIInsightsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_insights_generated_total",
				Help: "Total number of AI insight generations",
			},
			[]string{"source"},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Bulk operation metrics
func (m *Metrics) RecordBulkOperation(operation, status string, duration time.Duration) {
	m.BulkOperationsTotal.WithLabelValues(operation, status).Inc()
	m.BulkOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) RecordBulkItems(operation, status string, count int) {
	m.BulkItemsTotal.WithLabelValues(operation, status).Add(float64(count))
}

// Asset sync metrics
func (m *Metrics) RecordSyncRun(status, trigger string, duration time.Duration) {
	m.SyncRunsTotal.WithLabelValues(status).Inc()
	m.SyncRunDuration.WithLabelValues(trigger).Observe(duration.Seconds())
}

func (m *Metrics) RecordSyncEntries(accountID string, count int) {
	m.SyncEntriesUpserted.WithLabelValues(accountID).Add(float64(count))
}

// External API metrics
func (m *Metrics) RecordMetaAPICall(operation, status string, duration time.Duration) {
	m.MetaAPICalls.WithLabelValues(operation, status).Inc()
	m.MetaAPIDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// AI insight generation
func (m *Metrics) RecordAIInsight(source string) {
	m.AIInsightsGenerated.WithLabelValues(source).Inc()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
