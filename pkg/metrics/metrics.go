package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	DBQueryDuration      *prometheus.HistogramVec
	DBQueryErrorsTotal   *prometheus.CounterVec
	DBConnections        *prometheus.GaugeVec
	SlotsRejectedTotal   *prometheus.CounterVec
	AvailabilityRequests *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре (отдаётся через promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"method", "path"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query duration in seconds",
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
				ConstLabels: labels,
			},
			[]string{"operation"},
		),
		DBQueryErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Total number of failed database queries",
				ConstLabels: labels,
			},
			[]string{"operation"},
		),
		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections",
				Help:        "Database connection pool state",
				ConstLabels: labels,
			},
			[]string{"state"},
		),
		SlotsRejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_slots_rejected_total",
				Help:        "Candidate slots rejected by the availability filter, by reason",
				ConstLabels: labels,
			},
			[]string{"reason"},
		),
		AvailabilityRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_requests_total",
				Help:        "Availability computations by outcome",
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// SetDBStats обновляет gauge пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
}

func (m *Metrics) RecordSlotRejected(reason string) {
	m.SlotsRejectedTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordAvailabilityOutcome(outcome string) {
	m.AvailabilityRequests.WithLabelValues(outcome).Inc()
}
