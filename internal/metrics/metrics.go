// Package metrics 提供 copilot 服务的 Prometheus 指标
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 服务指标，注册在私有 Registry 上
type Metrics struct {
	registry *prometheus.Registry

	// 分析指标
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	SimulatedLatency prometheus.Histogram

	// HTTP 指标
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// WebSocket 指标
	SessionsActive prometheus.Gauge
}

// New 创建并注册全部指标
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "copilot_analyses_total",
				Help: "Total number of analyzed queries",
			},
			[]string{"topic", "sentiment", "priority"},
		),
		AnalysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "copilot_analysis_duration_seconds",
				Help:    "Wall time spent in the analysis pipeline",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
		),
		SimulatedLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "copilot_simulated_latency_ms",
				Help:    "Simulated processing time reported to callers",
				Buckets: prometheus.LinearBuckets(200, 100, 5),
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "copilot_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "copilot_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		SessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "copilot_ws_sessions_active",
				Help: "Number of open WebSocket chat sessions",
			},
		),
	}
}

// ObserveAnalysis 记录一次分析
func (m *Metrics) ObserveAnalysis(topic, sentiment, priority string, elapsed time.Duration, simulatedMs int) {
	m.AnalysesTotal.WithLabelValues(topic, sentiment, priority).Inc()
	m.AnalysisDuration.Observe(elapsed.Seconds())
	m.SimulatedLatency.Observe(float64(simulatedMs))
}

// ObserveHTTP 记录一次 HTTP 请求
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Registry 指标注册表
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
