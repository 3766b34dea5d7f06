package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "brewscout"

// Search outcome labels for SearchRequests.
const (
	StatusSuccess            = "success"
	StatusInvalidInput       = "invalid_input"
	StatusInvalidCoordinates = "invalid_coordinates"
	StatusProviderError      = "provider_error"
)

type Metrics struct {
	SearchRequests *prometheus.CounterVec
	APIErrors      prometheus.Counter
	RequestSeconds *prometheus.HistogramVec
	PlacesReturned prometheus.Histogram
	HTTPRequests   *prometheus.CounterVec
	HTTPLatency    *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SearchRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of nearby searches by outcome.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_api_errors_total",
			Help:      "Total number of errors received from the places provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of requests to the places provider API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		PlacesReturned: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "places_returned",
			Help:      "Number of places returned to the caller per search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20},
		}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests.",
		}, []string{"route", "method", "status"}),
		HTTPLatency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// ObserveHTTP records a served HTTP request.
func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}
