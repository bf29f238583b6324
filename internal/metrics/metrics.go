package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cleansuite",
			Name:      "http_requests_total",
			Help:      "Count of HTTP API requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cleansuite",
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		},
	)

	bookingUpdated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cleansuite",
			Name:      "booking_updated_total",
			Help:      "Count of booking updates by resulting status.",
		},
		[]string{"status"},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cleansuite",
			Name:      "booking_deleted_total",
			Help:      "Count of bookings deleted.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingCreated, bookingUpdated, bookingDeleted)
	})
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingUpdated(status string) {
	bookingUpdated.WithLabelValues(status).Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}
