package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/arbor/pkg/domain"
)

const namespace = "arbor"

// Metrics holds the collectors for a runner.
type Metrics struct {
	examples        *prometheus.CounterVec
	exampleDuration prometheus.Histogram
	contextFailures prometheus.Counter
	runs            *prometheus.CounterVec
	runDuration     prometheus.Gauge
}

// NewMetrics creates and registers the collectors on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		examples: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "examples_total",
			Help:      "Count of reported examples by status.",
		}, []string{"status"}),
		exampleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "example_duration_seconds",
			Help:      "Duration of example bodies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		contextFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "context_failures_total",
			Help:      "Count of contexts whose beforeAll or afterAll failed.",
		}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Count of completed runs by result.",
		}, []string{"result"}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last completed run.",
		}),
	}
}

// ObserveExample records one reported example.
func (m *Metrics) ObserveExample(e *domain.Example) {
	status := e.Status()
	m.examples.WithLabelValues(string(status)).Inc()
	if status != domain.StatusPending {
		m.exampleDuration.Observe(e.Duration.Seconds())
	}
}

// ObserveRun records the outcome of a finished run.
func (m *Metrics) ObserveRun(success bool, contextFailures int, d time.Duration) {
	result := "pass"
	if !success {
		result = "fail"
	}
	m.runs.WithLabelValues(result).Inc()
	m.contextFailures.Add(float64(contextFailures))
	m.runDuration.Set(d.Seconds())
}

// Formatter wraps next so that every written example is observed before being
// forwarded. A nil next only records.
func (m *Metrics) Formatter(next domain.LiveFormatter) domain.LiveFormatter {
	return &meteredFormatter{metrics: m, next: next}
}

type meteredFormatter struct {
	metrics *Metrics
	next    domain.LiveFormatter
}

func (f *meteredFormatter) WriteContext(c *domain.Context) {
	if f.next != nil {
		f.next.WriteContext(c)
	}
}

func (f *meteredFormatter) WriteExample(e *domain.Example, level int) {
	f.metrics.ObserveExample(e)
	if f.next != nil {
		f.next.WriteExample(e, level)
	}
}
