// Package history rebuilds the payout ledger from WinnerPaid logs.
package history

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/ledger"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/goodnatureofminers/lotterywatch/pkg/rangescan"
)

// Config controls how the block range is scanned.
type Config struct {
	DeployBlock uint64
	// MaxRange caps the blocks per log query. Zero issues one query for the whole range.
	MaxRange uint64
	// RescanDepth re-queries this many already scanned blocks on every run.
	RescanDepth uint64
	Workers     int
	MaxRetries  uint64
	RetryDelay  time.Duration
}

// Result is the outcome of one reconstruction run.
type Result struct {
	Events   []model.PayoutEvent
	Admitted int
	Head     uint64
}

// Reconstructor scans payout logs in bounded windows and merges them into a ledger.
// Runs are serialized; the ledger may be read concurrently.
type Reconstructor struct {
	source  LogSource
	decoder Decoder
	ledger  *ledger.Ledger
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
	cfg     Config

	newBackOff func() backoff.BackOff

	mu        sync.Mutex
	scanned   bool
	scannedTo uint64
}

func NewReconstructor(
	source LogSource,
	decoder Decoder,
	l *ledger.Ledger,
	limiter ratelimit.Limiter,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) *Reconstructor {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	r := &Reconstructor{
		source:  source,
		decoder: decoder,
		ledger:  l,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("history"),
		cfg:     cfg,
	}
	r.newBackOff = r.defaultBackOff
	return r
}

func (r *Reconstructor) defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.cfg.RetryDelay
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, r.cfg.MaxRetries)
}

// Run scans from the deploy block (first run) or from the last scanned head minus the
// rescan depth, and returns the whole ledger newest first.
func (r *Reconstructor) Run(ctx context.Context) (res Result, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveScan(err, res.Admitted, started)
	}()

	r.mu.Lock()
	defer r.mu.Unlock()

	head, err := r.source.LatestBlock(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("get latest block: %w", err)
	}
	res.Head = head

	from := r.startBlock()
	if head < from {
		res.Events = r.ledger.NewestFirst()
		return res, nil
	}

	windows := rangescan.Split(from, head, r.cfg.MaxRange)
	fetch := rangescan.WithRetry(r.fetchWindow, rangescan.RetryPolicy{
		NewBackOff: r.newBackOff,
		OnRetry: func(w rangescan.Window, err error, wait time.Duration) {
			r.logger.Warn("retrying log window",
				zap.Stringer("window", w),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
		},
	})

	logs, err := rangescan.Scan(ctx, windows, r.cfg.Workers, fetch)
	if err != nil {
		return Result{}, fmt.Errorf("scan blocks [%d,%d]: %w", from, head, err)
	}

	events := r.decode(logs)
	merged := r.ledger.Merge(events...)
	if n := len(merged.Conflicts); n > 0 {
		r.metrics.ObserveConflicts(n)
		for _, c := range merged.Conflicts {
			r.logger.Warn("refetched payout differs from ledger, keeping original",
				zap.Uint64("round", c.RoundID),
				zap.Stringer("position", c.Position),
			)
		}
	}

	r.scanned = true
	r.scannedTo = head
	r.metrics.SetLedgerSize(r.ledger.Len())

	if merged.Admitted > 0 {
		r.logger.Info("payout history updated",
			zap.Int("admitted", merged.Admitted),
			zap.Uint64("from", from),
			zap.Uint64("head", head),
		)
	}

	res.Admitted = merged.Admitted
	res.Events = r.ledger.NewestFirst()
	return res, nil
}

// ScannedTo returns the head covered by the last successful run.
func (r *Reconstructor) ScannedTo() (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scannedTo, r.scanned
}

func (r *Reconstructor) startBlock() uint64 {
	if !r.scanned {
		return r.cfg.DeployBlock
	}
	next := r.scannedTo + 1
	if r.cfg.RescanDepth >= next {
		return r.cfg.DeployBlock
	}
	return max(r.cfg.DeployBlock, next-r.cfg.RescanDepth)
}

func (r *Reconstructor) fetchWindow(ctx context.Context, w rangescan.Window) ([]types.Log, error) {
	r.limiter.Take()
	logs, err := r.source.Logs(ctx, w.From, w.To)
	r.metrics.ObserveWindow(err, len(logs))
	return logs, err
}

func (r *Reconstructor) decode(logs []types.Log) []model.PayoutEvent {
	slices.SortStableFunc(logs, func(a, b types.Log) int {
		pa := model.Position{Block: a.BlockNumber, LogIndex: a.Index}
		pb := model.Position{Block: b.BlockNumber, LogIndex: b.Index}
		switch {
		case pa.Less(pb):
			return -1
		case pb.Less(pa):
			return 1
		default:
			return 0
		}
	})

	events := make([]model.PayoutEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}
		ev, err := r.decoder.Decode(l)
		if err != nil {
			r.metrics.ObserveDecodeFailure()
			r.logger.Warn("dropping undecodable payout log",
				zap.Uint64("block", l.BlockNumber),
				zap.Uint("index", l.Index),
				zap.Stringer("tx", l.TxHash),
				zap.Error(err),
			)
			continue
		}
		events = append(events, ev)
	}
	return events
}
