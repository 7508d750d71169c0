// Package service reconciles the lottery data sources into one published snapshot.
package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/lotterywatch/internal/clock"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/auth"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/reader"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/status"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/treasury"
)

const (
	JobRoundState = "round_state"
	JobStatusTick = "status_tick"
	JobHistory    = "history"

	// HealthService is the gRPC health service name reported by the watcher.
	HealthService = "lotterywatch.Watcher"
)

// Config holds the polling cadence and derivation tunables.
type Config struct {
	RoundStateInterval time.Duration
	StatusTickInterval time.Duration
	HistoryInterval    time.Duration
	Policy             status.Policy
	RetainedBps        uint64
}

// DefaultConfig returns the cadence used by the dApp: 10s state, 1s tick, 1m history.
func DefaultConfig() Config {
	return Config{
		RoundStateInterval: 10 * time.Second,
		StatusTickInterval: time.Second,
		HistoryInterval:    time.Minute,
		Policy:             status.DefaultPolicy(),
		RetainedBps:        treasury.DefaultRetainedBasisPoints,
	}
}

// Snapshot is an immutable, internally consistent view published on every tick.
type Snapshot struct {
	At         time.Time
	State      reader.State
	View       model.StatusView
	History    []model.PayoutEvent
	HistoryErr error
	Summary    treasury.Summary
}

// SessionView adds the ownership decision for one caller.
type SessionView struct {
	*Snapshot
	IsOwner model.Tristate
}

// EntryCheck is the result of validating an entry amount against the current round.
type EntryCheck struct {
	Amount   *big.Int
	MinEntry *big.Int
	Invalid  bool
	Entry    model.Tristate
}

type historyState struct {
	events []model.PayoutEvent
	err    error
}

// Watcher schedules the polling jobs and publishes snapshots.
type Watcher struct {
	reader    RoundReader
	history   HistoryRunner
	scheduler Scheduler
	writer    Writer
	signer    Signer
	health    HealthReporter
	clock     clock.Clock
	logger    *zap.Logger
	cfg       Config

	policy atomic.Pointer[status.Policy]
	// publishMu orders the state read with the snapshot store across jobs.
	publishMu sync.Mutex
	snapshot  atomic.Pointer[Snapshot]
	past     atomic.Pointer[historyState]
	serving  atomic.Int32
}

func NewWatcher(
	reader RoundReader,
	history HistoryRunner,
	scheduler Scheduler,
	writer Writer,
	signer Signer,
	health HealthReporter,
	clk clock.Clock,
	logger *zap.Logger,
	cfg Config,
) *Watcher {
	if clk == nil {
		clk = clock.System{}
	}
	w := &Watcher{
		reader:    reader,
		history:   history,
		scheduler: scheduler,
		writer:    writer,
		signer:    signer,
		health:    health,
		clock:     clk,
		logger:    logger.Named("watcher"),
		cfg:       cfg,
	}
	p := cfg.Policy
	w.policy.Store(&p)
	w.past.Store(&historyState{})
	w.serving.Store(int32(healthpb.HealthCheckResponse_UNKNOWN))
	w.setServing(false)
	w.publish(p)
	return w
}

// Start schedules the polling jobs. They stop when ctx ends or the scheduler is stopped.
func (w *Watcher) Start(ctx context.Context) error {
	jobs := []struct {
		name     string
		interval time.Duration
		fn       func(context.Context) error
	}{
		{name: JobRoundState, interval: w.cfg.RoundStateInterval, fn: w.refreshRoundState},
		{name: JobStatusTick, interval: w.cfg.StatusTickInterval, fn: w.tick(*w.policy.Load())},
		{name: JobHistory, interval: w.cfg.HistoryInterval, fn: w.refreshHistory},
	}
	for _, j := range jobs {
		if err := w.scheduler.Schedule(ctx, j.name, j.interval, j.fn); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
	}
	w.logger.Info("watcher started",
		zap.Duration("round_state_interval", w.cfg.RoundStateInterval),
		zap.Duration("status_tick_interval", w.cfg.StatusTickInterval),
		zap.Duration("history_interval", w.cfg.HistoryInterval),
	)
	return nil
}

// Stop cancels every polling job.
func (w *Watcher) Stop() {
	w.scheduler.Stop()
	w.setServing(false)
}

// SetPolicy swaps the derivation policy. The running tick picks it up on its next firing.
func (w *Watcher) SetPolicy(p status.Policy) error {
	w.policy.Store(&p)
	if err := w.scheduler.Update(JobStatusTick, w.tick(p)); err != nil {
		return fmt.Errorf("set policy: %w", err)
	}
	return nil
}

// Snapshot returns the latest published snapshot. It is never nil.
func (w *Watcher) Snapshot() *Snapshot {
	return w.snapshot.Load()
}

// ViewFor evaluates ownership for session against the latest snapshot.
func (w *Watcher) ViewFor(session model.Session) SessionView {
	snap := w.Snapshot()
	return SessionView{
		Snapshot: snap,
		IsOwner:  auth.Evaluate(session, snap.State.Owner),
	}
}

// ValidateEntry checks an entry amount against the latest snapshot.
func (w *Watcher) ValidateEntry(text string) EntryCheck {
	view := w.Snapshot().View
	check := EntryCheck{
		MinEntry: view.MinEntry,
		Invalid:  status.IsInvalidAmount(text, view.MinEntry),
		Entry:    view.Entry,
	}
	if !check.Invalid {
		check.Amount, _ = status.ParseAmount(text)
	}
	return check
}

// RefreshOwner re-reads the contract owner and publishes the result.
func (w *Watcher) RefreshOwner(ctx context.Context) error {
	err := w.reader.RefreshOwner(ctx)
	w.publish(*w.policy.Load())
	if err != nil {
		return fmt.Errorf("refresh owner: %w", err)
	}
	return nil
}

// Join submits an entry for the current round. It is a single attempt.
func (w *Watcher) Join(ctx context.Context, amountText string) (*types.Transaction, error) {
	st := w.reader.State()
	if !st.Round.Loaded {
		return nil, ErrEntryNotAllowed
	}
	round := st.Round.Value
	view := status.Derive(&round, w.clock.Now(), *w.policy.Load())
	if view.Entry != model.Yes {
		return nil, fmt.Errorf("join round %d: %w", round.ID, ErrEntryNotAllowed)
	}
	if status.IsInvalidAmount(amountText, view.MinEntry) {
		return nil, fmt.Errorf("join round %d: %w", round.ID, ErrInvalidAmount)
	}
	value, err := status.ParseAmount(amountText)
	if err != nil {
		return nil, fmt.Errorf("join round %d: %w", round.ID, ErrInvalidAmount)
	}

	opts, err := w.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("join round %d: %w", round.ID, err)
	}
	tx, err := w.writer.JoinRound(ctx, opts, round.ID, value)
	if err != nil {
		return nil, fmt.Errorf("join round %d: %w", round.ID, err)
	}

	w.logger.Info("entry submitted", zap.Uint64("round", round.ID), zap.Stringer("tx", tx.Hash()))
	w.scheduler.Trigger(JobRoundState)
	return tx, nil
}

// RequestWinner asks the contract to draw the current round. The configured signer
// must be the contract owner.
func (w *Watcher) RequestWinner(ctx context.Context) (*types.Transaction, error) {
	st := w.reader.State()
	if err := w.requireOwnerSigner(st.Owner); err != nil {
		return nil, fmt.Errorf("request winner: %w", err)
	}
	if !st.Round.Loaded || !st.Players.Loaded {
		return nil, fmt.Errorf("request winner: %w", ErrRoundUnknown)
	}
	id := st.Round.Value.ID
	if len(st.Players.Value) == 0 {
		return nil, fmt.Errorf("request winner for round %d: %w", id, ErrNoPlayers)
	}

	opts, err := w.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("request winner for round %d: %w", id, err)
	}
	tx, err := w.writer.RequestWinner(ctx, opts, id)
	if err != nil {
		return nil, fmt.Errorf("request winner for round %d: %w", id, err)
	}

	w.logger.Info("winner requested", zap.Uint64("round", id), zap.Stringer("tx", tx.Hash()))
	w.scheduler.Trigger(JobRoundState)
	w.scheduler.Trigger(JobHistory)
	return tx, nil
}

// CreateRound opens a new round. The configured signer must be the contract owner.
func (w *Watcher) CreateRound(ctx context.Context, feeText string, start, end time.Time) (*types.Transaction, error) {
	st := w.reader.State()
	if err := w.requireOwnerSigner(st.Owner); err != nil {
		return nil, fmt.Errorf("create round: %w", err)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("create round: %w", ErrInvalidSchedule)
	}
	fee, err := status.ParseAmount(feeText)
	if err != nil {
		return nil, fmt.Errorf("create round: %w: %w", ErrInvalidAmount, err)
	}

	opts, err := w.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("create round: %w", err)
	}
	tx, err := w.writer.CreateRound(ctx, opts, fee, start.Unix(), end.Unix())
	if err != nil {
		return nil, fmt.Errorf("create round: %w", err)
	}

	w.logger.Info("round creation submitted", zap.Time("start", start), zap.Time("end", end), zap.Stringer("tx", tx.Hash()))
	w.scheduler.Trigger(JobRoundState)
	return tx, nil
}

// requireOwnerSigner gates owner actions on the address that signs the transaction.
func (w *Watcher) requireOwnerSigner(owner model.Field[common.Address]) error {
	if w.signer == nil {
		return ErrNoSigner
	}
	return requireOwner(model.Session{Resolved: true, Address: w.signer.Address().Hex()}, owner)
}

func requireOwner(session model.Session, owner model.Field[common.Address]) error {
	switch auth.Evaluate(session, owner) {
	case model.Yes:
		return nil
	case model.No:
		return ErrNotOwner
	default:
		return ErrOwnerUnresolved
	}
}

func (w *Watcher) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if w.signer == nil {
		return nil, ErrNoSigner
	}
	opts, err := w.signer.TransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get transact opts: %w", err)
	}
	return opts, nil
}

func (w *Watcher) refreshRoundState(ctx context.Context) error {
	err := w.reader.Refresh(ctx)
	w.publish(*w.policy.Load())
	return err
}

func (w *Watcher) refreshHistory(ctx context.Context) error {
	res, err := w.history.Run(ctx)
	prev := w.past.Load()
	if err != nil {
		w.past.Store(&historyState{events: prev.events, err: err})
	} else {
		w.past.Store(&historyState{events: res.Events})
	}
	w.publish(*w.policy.Load())
	return err
}

// tick binds the policy into the status job so each Update installs a fresh closure.
func (w *Watcher) tick(p status.Policy) func(context.Context) error {
	return func(context.Context) error {
		w.publish(p)
		return nil
	}
}

func (w *Watcher) publish(p status.Policy) {
	w.publishMu.Lock()
	defer w.publishMu.Unlock()

	now := w.clock.Now()
	st := w.reader.State()
	past := w.past.Load()

	var round *model.Round
	if st.Round.Loaded {
		r := st.Round.Value
		round = &r
	}

	summary, err := treasury.Summarize(past.events, w.cfg.RetainedBps)
	if err != nil {
		w.logger.Error("summarize payouts", zap.Error(err))
	}

	w.snapshot.Store(&Snapshot{
		At:         now,
		State:      st,
		View:       status.Derive(round, now, p),
		History:    past.events,
		HistoryErr: past.err,
		Summary:    summary,
	})
	w.setServing(st.Round.Loaded)
}

func (w *Watcher) setServing(ok bool) {
	if w.health == nil {
		return
	}
	next := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		next = healthpb.HealthCheckResponse_SERVING
	}
	if prev := w.serving.Swap(int32(next)); prev == int32(next) {
		return
	}
	w.health.SetServingStatus(HealthService, next)
	w.health.SetServingStatus("", next)
}
