package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pickleball_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pickleball_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pickleball_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pickleball_booking_conflicts_total",
			Help: "Total number of booking attempts rejected because the slot was already booked",
		},
	)

	CourtCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pickleball_court_cache_total",
			Help: "Court list cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	EmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pickleball_emails_total",
			Help: "Total number of emails by type and status",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pickleball_email_queue_length",
			Help: "Current length of the email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated() {
	BookingsCreatedTotal.Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordCourtCache(outcome string) {
	CourtCacheTotal.WithLabelValues(outcome).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsTotal.WithLabelValues(emailType, status).Inc()
}
