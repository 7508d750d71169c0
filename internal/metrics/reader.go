package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	readerFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "round_reader",
		Name:      "fetch_total",
		Help:      "Count of round state field reads.",
	}, []string{"contract", "field", "status"})

	readerFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lotterywatch",
		Subsystem: "round_reader",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of round state field reads.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"contract", "field", "status"})

	readerDiscardedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "round_reader",
		Name:      "discarded_total",
		Help:      "Count of read results discarded instead of applied.",
	}, []string{"contract", "field", "reason"})
)

// Reader tracks metrics for the round state reader.
type Reader struct {
	contract string
}

// NewReader constructs a Reader for the given contract address.
func NewReader(contract string) *Reader {
	if contract == "" {
		contract = "unknown"
	}
	return &Reader{contract: contract}
}

// ObserveFetch records one field read.
func (m Reader) ObserveFetch(field string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	readerFetchTotal.WithLabelValues(m.contract, field, status).Inc()
	readerFetchDuration.WithLabelValues(m.contract, field, status).Observe(time.Since(started).Seconds())
}

// ObserveDiscarded records a completion that was not applied.
func (m Reader) ObserveDiscarded(field, reason string) {
	readerDiscardedTotal.WithLabelValues(m.contract, field, reason).Inc()
}
