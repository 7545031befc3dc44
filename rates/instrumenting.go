package rates

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-currency-converter/domain"
)

// Metrics for rate tiers
type Metrics struct {
	// Requests counts tier attempts by source and outcome (success or failure)
	Requests *prometheus.CounterVec

	// Duration observes how long each tier took to answer
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the rate tier metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Subsystem: "rate_source",
				Name:      "requests_total",
				Help:      "Rate source attempts by source and outcome.",
			},
			[]string{"source", "outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "converter",
				Subsystem: "rate_source",
				Name:      "duration_seconds",
				Help:      "Time taken by a rate source to answer.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}

// instrumentingSource decorates a Source with prometheus metrics
type instrumentingSource struct {
	next    Source
	metrics *Metrics
}

// NewInstrumentingSource returns a new instrumenting Source
func NewInstrumentingSource(metrics *Metrics, s Source) Source {
	return &instrumentingSource{
		next:    s,
		metrics: metrics,
	}
}

func (s *instrumentingSource) Name() string {
	return s.next.Name()
}

func (s *instrumentingSource) Rates(ctx context.Context) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		s.metrics.Requests.WithLabelValues(s.next.Name(), outcome).Inc()
		s.metrics.Duration.WithLabelValues(s.next.Name()).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Rates(ctx)
}
