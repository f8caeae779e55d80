package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnmatchedRoute labels requests that hit no registered route
const UnmatchedRoute = "unmatched"

// Collector records service metrics using Prometheus
type Collector struct {
	predictions  prometheus.Counter
	percentage   prometheus.Histogram
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector creates a collector registered on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		predictions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "awesomeness_predictions_total",
				Help: "Total number of awesomeness predictions served",
			},
		),
		percentage: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "awesomeness_percentage",
				Help:    "Distribution of predicted awesomeness percentages",
				Buckets: prometheus.LinearBuckets(10, 10, 9),
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awesomeness_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "awesomeness_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// RecordPrediction records a served prediction
func (c *Collector) RecordPrediction(percentage int) {
	c.predictions.Inc()
	c.percentage.Observe(float64(percentage))
}

// RecordRequest records a completed HTTP request. An empty route is
// recorded as UnmatchedRoute so raw paths never become label values.
func (c *Collector) RecordRequest(route string, status int, duration time.Duration) {
	if route == "" {
		route = UnmatchedRoute
	}
	c.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}
