package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innkeeper_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency by route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "innkeeper_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// BookingsCreatedTotal counts created bookings by payment mode
	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innkeeper_bookings_created_total",
			Help: "Total bookings created",
		},
		[]string{"payment_mode"},
	)

	// BookingTransitionsTotal counts workflow transitions by target status
	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innkeeper_booking_transitions_total",
			Help: "Booking workflow transitions",
		},
		[]string{"status"},
	)

	// PaymentsTotal counts payment gateway outcomes
	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innkeeper_payments_total",
			Help: "Payment gateway notifications processed",
		},
		[]string{"status"},
	)

	// ReservationsExpiredTotal counts reservations cancelled by the
	// expiration job
	ReservationsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innkeeper_reservations_expired_total",
			Help: "Reservations cancelled after the payment window lapsed",
		},
	)

	// TasksEscalatedTotal counts housekeeping tasks bumped to high priority
	TasksEscalatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innkeeper_tasks_escalated_total",
			Help: "Overdue housekeeping tasks escalated to high priority",
		},
	)
)
