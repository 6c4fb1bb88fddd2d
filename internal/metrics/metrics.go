// Package metrics exposes Prometheus instrumentation for the server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dosetrack/internal/domain"
)

const namespace = "dosetrack"

// Source provides the state the gauges are computed from.
type Source interface {
	Snapshot() domain.Snapshot
	Now() time.Time
}

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	injectionLogs prometheus.GaugeFunc
	weightEntries prometheus.GaugeFunc
	adherence     prometheus.GaugeFunc
	lastInjection prometheus.GaugeFunc
}

// New registers the collectors, including the Go runtime and process ones.
// The state gauges read src at scrape time; with a nil src only request
// metrics are collected.
func New(src Source) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration,
	)
	if src == nil {
		return m
	}

	m.injectionLogs = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "injection_logs",
		Help:      "Number of logged injections.",
	}, func() float64 {
		return float64(len(src.Snapshot().InjectionLogs))
	})
	m.weightEntries = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "weight_entries",
		Help:      "Number of weight entries.",
	}, func() float64 {
		return float64(len(src.Snapshot().WeightEntries))
	})
	m.adherence = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "adherence_rate_percent",
		Help:      "Injections in the trailing 30 days relative to the expected 8.",
	}, func() float64 {
		return float64(domain.AdherenceRate(src.Snapshot().InjectionLogs, src.Now()))
	})
	m.lastInjection = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_injection_timestamp_seconds",
		Help:      "Unix time of the most recent injection, 0 if none.",
	}, func() float64 {
		return lastInjection(src.Snapshot().InjectionLogs)
	})
	m.registry.MustRegister(m.injectionLogs, m.weightEntries, m.adherence, m.lastInjection)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
}

func lastInjection(logs []domain.InjectionLog) float64 {
	var last time.Time
	for _, l := range logs {
		if l.Date.After(last) {
			last = l.Date
		}
	}
	if last.IsZero() {
		return 0
	}
	return float64(last.Unix())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
