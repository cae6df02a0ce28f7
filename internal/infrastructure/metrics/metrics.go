// Package metrics collects Prometheus metrics for the HTTP surface, upstream APIs, caches and the scan queue.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector Prometheus 指標
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	cacheOperations *prometheus.CounterVec

	scanQueueLength prometheus.Gauge
	scansTotal      *prometheus.CounterVec

	assistantReplies *prometheus.CounterVec
}

// New 創建指標收集器，每個收集器使用自己的 registry
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealmate_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mealmate_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		upstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealmate_upstream_requests_total",
				Help: "Total number of calls to external APIs",
			},
			[]string{"service", "endpoint", "status"},
		),
		upstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mealmate_upstream_request_duration_seconds",
				Help:    "External API call duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"service", "endpoint"},
		),
		cacheOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealmate_cache_operations_total",
				Help: "Cache lookups by cache and result",
			},
			[]string{"cache", "result"},
		),
		scanQueueLength: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mealmate_scan_queue_length",
				Help: "Scan requests waiting in the queue",
			},
		),
		scansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealmate_scans_total",
				Help: "Ingredient scans by outcome",
			},
			[]string{"outcome"},
		),
		assistantReplies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealmate_assistant_replies_total",
				Help: "Assistant replies by intent",
			},
			[]string{"intent"},
		),
	}
}

// HTTPMiddleware 記錄 HTTP 請求數與耗時
func (m *Collector) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// UpstreamCall 記錄外部 API 呼叫
func (m *Collector) UpstreamCall(service, endpoint string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.upstreamRequestsTotal.WithLabelValues(service, endpoint, status).Inc()
	m.upstreamRequestDuration.WithLabelValues(service, endpoint).Observe(duration.Seconds())
}

// CacheLookup 記錄快取命中與否
func (m *Collector) CacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheOperations.WithLabelValues(cache, result).Inc()
}

// SetScanQueueLength 更新掃描隊列長度
func (m *Collector) SetScanQueueLength(n int) {
	if m == nil {
		return
	}
	m.scanQueueLength.Set(float64(n))
}

// ScanFinished 記錄掃描結果
func (m *Collector) ScanFinished(outcome string) {
	if m == nil {
		return
	}
	m.scansTotal.WithLabelValues(outcome).Inc()
}

// AssistantReply 記錄助理回覆的分類
func (m *Collector) AssistantReply(intent string) {
	if m == nil {
		return
	}
	m.assistantReplies.WithLabelValues(intent).Inc()
}

// Handler /metrics 端點
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry 取得 registry，測試時用來讀取指標
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}
