package server

import (
	"net/http"
	"strconv"

	"github.com/huangsam/dashviz/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricsNamespace     = "dashviz"
	MetricsSubsystemHTTP = "http"
	MetricsSubsystemPlan = "plan"
)

// Metrics holds the collectors of one server on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	planActionsTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: MetricsNamespace}))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "requests_total",
		Help:      "The total number of HTTP requests.",
	}, []string{"route", "method", "status_code"})
	m.registry.MustRegister(m.httpRequestsTotal)

	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "request_duration_seconds",
		Help:      "Time to execute the HTTP handler.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	m.registry.MustRegister(m.httpDuration)

	m.planActionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemPlan,
		Name:      "actions_total",
		Help:      "The total number of planned actions per target and kind.",
	}, []string{"target", "kind"})
	m.registry.MustRegister(m.planActionsTotal)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed float64) {
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed)
}

// ObservePlan counts the actions of a plan.
func (m *Metrics) ObservePlan(plan schema.RenderPlan) {
	m.planActionsTotal.WithLabelValues("radar", string(plan.Radar.Kind)).Inc()
	m.planActionsTotal.WithLabelValues("wordcloud", string(plan.WordCloud.Kind)).Inc()
}
