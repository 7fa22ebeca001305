package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/lightspeed/internal/constants"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	requests, err := registerOrReuse(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "requests_total",
			Help:      "Requests sent to the Lightspeed API by method and status code.",
		},
		[]string{"method", "code"},
	))
	if err != nil {
		return nil, fmt.Errorf("registering request counter: %w", err)
	}

	duration, err := registerOrReuse(registerer, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Latency of requests to the Lightspeed API.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, fmt.Errorf("registering request histogram: %w", err)
	}

	return &metrics{requests: requests, duration: duration}, nil
}

// registerOrReuse lets several clients share one registerer.
func registerOrReuse[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	return collector, err
}

// observe is a no-op on a nil receiver so callers need not check.
func (m *metrics) observe(method, code string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
