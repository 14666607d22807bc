package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	LookupsTotal    *prometheus.CounterVec
	LookupDuration  *prometheus.HistogramVec
	LookupsInFlight prometheus.Gauge

	SourceRequestsTotal   *prometheus.CounterVec
	SourceRequestDuration *prometheus.HistogramVec

	BotUpdatesTotal   *prometheus.CounterVec
	BotUpdateDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		LookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordglance_lookups_total",
				Help: "Total number of lookups processed",
			},
			[]string{"content_type", "status"},
		),
		LookupDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordglance_lookup_duration_seconds",
				Help:    "Lookup duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"content_type"},
		),
		LookupsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordglance_lookups_in_flight",
				Help: "Number of lookups currently being processed",
			},
		),

		SourceRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordglance_source_requests_total",
				Help: "Total number of upstream source requests",
			},
			[]string{"source", "status"},
		),
		SourceRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordglance_source_request_duration_seconds",
				Help:    "Upstream source request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"source"},
		),

		BotUpdatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordglance_bot_updates_total",
				Help: "Total number of telegram updates processed",
			},
			[]string{"type", "status"},
		),
		BotUpdateDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordglance_bot_update_duration_seconds",
				Help:    "Telegram update handling duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"type"},
		),
	}

	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordLookup(contentType, status string, duration time.Duration) {
	m.LookupsTotal.WithLabelValues(contentType, status).Inc()
	m.LookupDuration.WithLabelValues(contentType).Observe(duration.Seconds())
}

func (m *Metrics) RecordSourceRequest(source, status string, duration time.Duration) {
	m.SourceRequestsTotal.WithLabelValues(source, status).Inc()
	m.SourceRequestDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *Metrics) RecordBotUpdate(updateType, status string, duration time.Duration) {
	m.BotUpdatesTotal.WithLabelValues(updateType, status).Inc()
	m.BotUpdateDuration.WithLabelValues(updateType).Observe(duration.Seconds())
}

func (m *Metrics) IncLookupsInFlight() {
	m.LookupsInFlight.Inc()
}

func (m *Metrics) DecLookupsInFlight() {
	m.LookupsInFlight.Dec()
}
