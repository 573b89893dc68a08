package holidayapi

import (
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records Prometheus metrics for Holiday API calls. It is safe for
// concurrent use and may be shared by several clients.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg, or on the default registerer
// when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "holidayapi_requests_total",
				Help: "Total number of Holiday API requests by endpoint and status code",
			},
			[]string{"endpoint", "code"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "holidayapi_request_duration_seconds",
				Help:    "Duration of Holiday API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// instrument wraps next so every round trip is counted and timed
func (m *Metrics) instrument(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		endpoint := path.Base(req.URL.Path)
		start := time.Now()

		resp, err := next.RoundTrip(req)

		m.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		code := "error"
		if err == nil {
			code = strconv.Itoa(resp.StatusCode)
		}
		m.requestsTotal.WithLabelValues(endpoint, code).Inc()

		return resp, err
	})
}
