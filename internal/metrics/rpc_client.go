package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "chain", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lotterywatch",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// RPCClient tracks metrics for calls to an Ethereum JSON-RPC node.
type RPCClient struct {
	chain string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(chain string) *RPCClient {
	if chain == "" {
		chain = "unknown"
	}
	return &RPCClient{chain: chain}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, m.chain, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.chain, status).Observe(time.Since(started).Seconds())
}
