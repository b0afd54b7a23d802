package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	superstepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hybridbc_superstep_total",
		Help: "Total supersteps executed, by run and round.",
	}, []string{"run_id", "round"})

	roundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hybridbc_round_duration_seconds",
		Help:    "Duration of one full BSP round, by run and round.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"run_id", "round"})

	messageExchange = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hybridbc_messages_exchanged",
		Help: "Non-zero boundary slots carried in the last superstep's exchange, by run and round.",
	}, []string{"run_id", "round"})
)

// PrometheusRecorder records into the package-level, process-wide
// Prometheus collectors registered via promauto.
type PrometheusRecorder struct{}

// NewPrometheusRecorder returns a Recorder backed by the default
// Prometheus registry.
func NewPrometheusRecorder() *PrometheusRecorder { return &PrometheusRecorder{} }

func (PrometheusRecorder) ObserveSuperstep(runID, round string) {
	superstepTotal.WithLabelValues(runID, round).Inc()
}

func (PrometheusRecorder) ObserveRoundDuration(runID, round string, d time.Duration) {
	roundDuration.WithLabelValues(runID, round).Observe(d.Seconds())
}

func (PrometheusRecorder) ObserveMessageExchange(runID, round string, count int) {
	messageExchange.WithLabelValues(runID, round).Set(float64(count))
}
