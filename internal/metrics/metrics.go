package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	dbQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database operation duration in seconds, including retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	dbRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_retries_total",
			Help: "Total number of retries after transient database errors",
		},
		[]string{"operation"},
	)

	bookingInquiriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_inquiries_total",
			Help: "Total number of booking inquiries received",
		},
	)

	contactMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Total number of contact messages received",
		},
	)

	repositoryMode = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "repository_mode",
			Help: "Active storage implementation (1 for the selected mode)",
		},
		[]string{"mode"},
	)
)

// Middleware records request counts and latency. Requests are labelled by the
// matched ServeMux pattern so path parameters do not explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

// RecordDBQuery records a database operation
func RecordDBQuery(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dbQueriesTotal.WithLabelValues(operation, status).Inc()
	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDBRetry records a retry after a transient error
func RecordDBRetry(operation string) {
	dbRetriesTotal.WithLabelValues(operation).Inc()
}

// RecordBookingInquiry records a new booking inquiry
func RecordBookingInquiry() {
	bookingInquiriesTotal.Inc()
}

// RecordContactMessage records a new contact message
func RecordContactMessage() {
	contactMessagesTotal.Inc()
}

// SetRepositoryMode marks mode as the active storage implementation.
func SetRepositoryMode(mode string) {
	repositoryMode.Reset()
	repositoryMode.WithLabelValues(mode).Set(1)
}
