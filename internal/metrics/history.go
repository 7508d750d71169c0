package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	historyScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "scan_total",
		Help:      "Count of payout history reconstructions.",
	}, []string{"contract", "status"})

	historyScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "scan_duration_seconds",
		Help:      "Duration of payout history reconstructions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"contract", "status"})

	historyAdmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "admitted_events_total",
		Help:      "Count of payout events admitted into the ledger.",
	}, []string{"contract"})

	historyWindowTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "window_fetch_total",
		Help:      "Count of log query attempts per block window.",
	}, []string{"contract", "status"})

	historyWindowLogs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "window_logs",
		Help:      "Number of logs returned per block window.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"contract"})

	historyDecodeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "decode_failures_total",
		Help:      "Count of logs dropped because they could not be decoded.",
	}, []string{"contract"})

	historyConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "conflicts_total",
		Help:      "Count of refetched events that disagreed with the ledger.",
	}, []string{"contract"})

	historyLedgerSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lotterywatch",
		Subsystem: "history",
		Name:      "ledger_size",
		Help:      "Number of payout events held in the ledger.",
	}, []string{"contract"})
)

// History tracks metrics for the payout history reconstructor.
type History struct {
	contract string
}

// NewHistory constructs a History collector.
func NewHistory(contract string) *History {
	if contract == "" {
		contract = "unknown"
	}
	return &History{contract: contract}
}

// ObserveScan records a full reconstruction run.
func (m History) ObserveScan(err error, admitted int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	historyScanTotal.WithLabelValues(m.contract, status).Inc()
	historyScanDuration.WithLabelValues(m.contract, status).Observe(time.Since(started).Seconds())
	if admitted > 0 {
		historyAdmittedTotal.WithLabelValues(m.contract).Add(float64(admitted))
	}
}

// ObserveWindow records one log query attempt.
func (m History) ObserveWindow(err error, logs int) {
	if err != nil {
		historyWindowTotal.WithLabelValues(m.contract, "error").Inc()
		return
	}
	historyWindowTotal.WithLabelValues(m.contract, "success").Inc()
	historyWindowLogs.WithLabelValues(m.contract).Observe(float64(logs))
}

// ObserveDecodeFailure counts a dropped log.
func (m History) ObserveDecodeFailure() {
	historyDecodeFailuresTotal.WithLabelValues(m.contract).Inc()
}

// ObserveConflicts counts refetched events that did not match the held entry.
func (m History) ObserveConflicts(n int) {
	historyConflictsTotal.WithLabelValues(m.contract).Add(float64(n))
}

// SetLedgerSize publishes the current ledger length.
func (m History) SetLedgerSize(n int) {
	historyLedgerSize.WithLabelValues(m.contract).Set(float64(n))
}
