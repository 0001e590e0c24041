package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel_booking"

// Metrics owns its registry so that every fx app (and every test) gets a fresh set of collectors.
type Metrics struct {
	registry        *prometheus.Registry
	bookingCreated  *prometheus.CounterVec
	bookingCanceled prometheus.Counter
	bookingConflict prometheus.Counter
	httpDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bookingCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_created_total",
				Help:      "Count of bookings created by status.",
			},
			[]string{"status"},
		),
		bookingCanceled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_canceled_total",
				Help:      "Count of bookings canceled by guests.",
			},
		),
		bookingConflict: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_conflict_total",
				Help:      "Count of booking attempts rejected because the room was taken.",
			},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.bookingCreated,
		m.bookingCanceled,
		m.bookingConflict,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) IncBookingCreated(status string) {
	m.bookingCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) IncBookingCanceled() {
	m.bookingCanceled.Inc()
}

func (m *Metrics) IncBookingConflict() {
	m.bookingConflict.Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
