package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 应用指标
type Metrics struct {
	// HTTP请求指标
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// 文档存储指标
	StoreReadsTotal    *prometheus.CounterVec
	StoreReadFallbacks prometheus.Counter
	StoreWritesTotal   *prometheus.CounterVec
	StoreDocumentBytes prometheus.Gauge

	// 实体操作指标
	EntityMutationsTotal *prometheus.CounterVec
}

// New 创建指标收集器
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetdesk_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "assetdesk_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		StoreReadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetdesk_store_reads_total",
				Help: "Total number of document store reads",
			},
			[]string{"backend", "status"},
		),

		StoreReadFallbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "assetdesk_store_read_fallbacks_total",
				Help: "Total number of reads served from the mirror tier",
			},
		),

		StoreWritesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetdesk_store_writes_total",
				Help: "Total number of document store writes",
			},
			[]string{"backend", "status"},
		),

		StoreDocumentBytes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "assetdesk_store_document_bytes",
				Help: "Size of the last written document in bytes",
			},
		),

		EntityMutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetdesk_entity_mutations_total",
				Help: "Total number of entity create/update/delete operations",
			},
			[]string{"collection", "operation"},
		),
	}
}
