// Package metrics exposes Prometheus collectors for the dashboard.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finchat"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	answers          *prometheus.CounterVec
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	datasetRecords   prometheus.Gauge
	datasetCompanies prometheus.Gauge
	datasetDups      prometheus.Gauge
	datasetLoadedAt  prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Resolved questions by question id and outcome status.",
		}, []string{"question", "status"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		datasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Records read from the dataset source, duplicates included.",
		}),
		datasetCompanies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_companies",
			Help:      "Distinct companies in the dataset.",
		}),
		datasetDups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_duplicate_records",
			Help:      "Records shadowed by an earlier row for the same company and year.",
		}),
		datasetLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time the dataset was loaded.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.answers,
		m.requests,
		m.requestDuration,
		m.datasetRecords,
		m.datasetCompanies,
		m.datasetDups,
		m.datasetLoadedAt,
	)

	return m
}

// ObserveAnswer implements core.AnswerObserver.
// Unknown question ids share one label value to bound cardinality.
func (m *Metrics) ObserveAnswer(q core.Question, status core.Status) {
	label := string(q)
	if !q.Valid() {
		label = "unsupported"
	}
	m.answers.WithLabelValues(label, string(status)).Inc()
}

// ObserveRequest records one served HTTP request.
// Unmatched routes and non-standard methods collapse into one label value each.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = methodLabel(method)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// SetDataset publishes the loaded dataset's size.
func (m *Metrics) SetDataset(ds *core.Dataset) {
	m.datasetRecords.Set(float64(ds.Len()))
	m.datasetCompanies.Set(float64(len(ds.Companies())))
	m.datasetDups.Set(float64(ds.Duplicates()))
	m.datasetLoadedAt.Set(float64(ds.LoadedAt.Unix()))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	default:
		return "other"
	}
}
